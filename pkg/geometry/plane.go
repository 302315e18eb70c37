package geometry

import (
	"math"

	"github.com/df07/go-intersect/pkg/core"
)

// Plane is an infinite plane with equation normal·p + offset = 0
type Plane struct {
	normal core.Vec3 // Unit normal
	offset float64   // Signed offset along the normal
}

// NewPlane creates a plane from a normal and a signed offset. The normal is
// normalized; it must not be the zero vector.
func NewPlane(normal core.Vec3, offset float64) Plane {
	return Plane{normal: normal.Normalize(), offset: offset}
}

// NewPlaneFromPoint creates a plane through point with the given normal
func NewPlaneFromPoint(point, normal core.Vec3) Plane {
	n := normal.Normalize()
	return Plane{normal: n, offset: -n.Dot(point)}
}

// Normal returns the unit normal
func (p Plane) Normal() core.Vec3 { return p.normal }

// Offset returns the signed offset of the plane equation
func (p Plane) Offset() float64 { return p.offset }

// Implicit evaluates normal·point + offset (zero on the plane)
func (p Plane) Implicit(point core.Vec3) float64 {
	return p.normal.Dot(point) + p.offset
}

// TraceMinimal returns the distance to the plane
func (p Plane) TraceMinimal(ray core.Ray) (float64, bool) {
	denominator := ray.Direction.Dot(p.normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < core.ParallelEpsilon {
		return 0, false
	}

	d := -(ray.Origin.Dot(p.normal) + p.offset) / denominator
	if !ray.InRange(d) {
		return 0, false
	}
	return d, true
}

// HitDistance returns the distance of a minimal hit
func (p Plane) HitDistance(d float64) float64 { return d }

// Materialize builds the full hit at distance d
func (p Plane) Materialize(ray core.Ray, d float64) core.Hit {
	return core.NewHitFromNormal(d, ray.At(d), p.normal)
}

// Trace returns the nearest hit within the ray's range
func (p Plane) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[float64](p, ray)
}

// TraceShadow reports whether the plane is hit within the ray's range
func (p Plane) TraceShadow(ray core.Ray) bool {
	return TraceShadow[float64](p, ray)
}

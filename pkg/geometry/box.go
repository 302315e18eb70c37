package geometry

import (
	"math"

	"github.com/df07/go-intersect/pkg/core"
)

// AxisAlignedBox is a box whose faces are perpendicular to the coordinate
// axes. Min is componentwise less than or equal to Max.
type AxisAlignedBox struct {
	min, max core.Vec3
}

// NewAxisAlignedBox creates a box spanning the two corners in any order
func NewAxisAlignedBox(a, b core.Vec3) AxisAlignedBox {
	return AxisAlignedBox{min: a.Min(b), max: a.Max(b)}
}

// Min returns the minimum corner
func (b AxisAlignedBox) Min() core.Vec3 { return b.min }

// Max returns the maximum corner
func (b AxisAlignedBox) Max() core.Vec3 { return b.max }

// Center returns the center point of the box
func (b AxisAlignedBox) Center() core.Vec3 {
	return b.min.Add(b.max).Multiply(0.5)
}

// TraceMinimal intersects the box using the slab method
func (b AxisAlignedBox) TraceMinimal(ray core.Ray) (float64, bool) {
	inv := ray.Direction.Inverse()
	t1 := b.min.Subtract(ray.Origin).MultiplyVec(inv)
	t2 := b.max.Subtract(ray.Origin).MultiplyVec(inv)
	return slab(ray, t1, t2)
}

// slab reduces per-axis entry/exit distances to the accepted distance
func slab(ray core.Ray, t1, t2 core.Vec3) (float64, bool) {
	lo := t1.Min(t2)
	hi := t1.Max(t2)
	tmin := max(lo.X, lo.Y, lo.Z)
	tmax := min(hi.X, hi.Y, hi.Z)

	if tmax < tmin {
		return 0, false
	}
	if ray.InRange(tmin) {
		return tmin, true
	}
	if ray.InRange(tmax) {
		return tmax, true
	}
	return 0, false
}

// HitDistance returns the distance of a minimal hit
func (b AxisAlignedBox) HitDistance(d float64) float64 { return d }

// Materialize builds the full hit; the normal is the face the point lies on
func (b AxisAlignedBox) Materialize(ray core.Ray, d float64) core.Hit {
	point := ray.At(d)
	return core.NewHitFromNormal(d, point, b.faceNormal(point))
}

// faceNormal returns the outward normal of the first bounding plane within
// FaceEpsilon of point, testing x, y, z and min before max. When rounding
// left the point off every face, the closest face is used.
func (b AxisAlignedBox) faceNormal(point core.Vec3) core.Vec3 {
	for axis := 0; axis < 3; axis++ {
		p := point.Axis(axis)
		if math.Abs(p-b.min.Axis(axis)) < core.FaceEpsilon {
			return core.Vec3{}.WithAxis(axis, -1)
		}
		if math.Abs(p-b.max.Axis(axis)) < core.FaceEpsilon {
			return core.Vec3{}.WithAxis(axis, 1)
		}
	}

	best := math.Inf(1)
	var normal core.Vec3
	for axis := 0; axis < 3; axis++ {
		p := point.Axis(axis)
		if d := math.Abs(p - b.min.Axis(axis)); d < best {
			best = d
			normal = core.Vec3{}.WithAxis(axis, -1)
		}
		if d := math.Abs(p - b.max.Axis(axis)); d < best {
			best = d
			normal = core.Vec3{}.WithAxis(axis, 1)
		}
	}
	return normal
}

// Trace returns the nearest hit within the ray's range
func (b AxisAlignedBox) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[float64](b, ray)
}

// TraceShadow reports whether the box is hit within the ray's range
func (b AxisAlignedBox) TraceShadow(ray core.Ray) bool {
	return TraceShadow[float64](b, ray)
}

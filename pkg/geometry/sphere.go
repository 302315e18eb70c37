package geometry

import (
	"math"

	"github.com/df07/go-intersect/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	center  core.Vec3
	radius  float64
	radius2 float64 // Cached squared radius
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{
		center:  center,
		radius:  radius,
		radius2: radius * radius,
	}
}

// Center returns the sphere center
func (s Sphere) Center() core.Vec3 { return s.center }

// Radius returns the sphere radius
func (s Sphere) Radius() float64 { return s.radius }

// Radius2 returns the squared radius
func (s Sphere) Radius2() float64 { return s.radius2 }

// Implicit evaluates |point - center|² - radius² (zero on the surface)
func (s Sphere) Implicit(point core.Vec3) float64 {
	return point.Subtract(s.center).LengthSquared() - s.radius2
}

// TraceMinimal returns the distance to the nearest in-range root
func (s Sphere) TraceMinimal(ray core.Ray) (float64, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.radius2

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	inv2a := 0.5 / a

	// Try the closer root first, then the farther one
	if d := (-b - sqrtD) * inv2a; ray.InRange(d) {
		return d, true
	}
	if d := (-b + sqrtD) * inv2a; ray.InRange(d) {
		return d, true
	}
	return 0, false
}

// HitDistance returns the distance of a minimal hit
func (s Sphere) HitDistance(d float64) float64 { return d }

// Materialize builds the full hit with the outward normal at distance d
func (s Sphere) Materialize(ray core.Ray, d float64) core.Hit {
	point := ray.At(d)
	normal := point.Subtract(s.center).Multiply(1.0 / s.radius)
	return core.NewHitFromNormal(d, point, normal)
}

// Trace returns the nearest hit within the ray's range
func (s Sphere) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[float64](s, ray)
}

// TraceShadow reports whether the sphere is hit within the ray's range
func (s Sphere) TraceShadow(ray core.Ray) bool {
	return TraceShadow[float64](s, ray)
}

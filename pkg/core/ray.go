package core

import "math"

// Numeric tolerances shared by every primitive. They are part of the
// intersection contract.
const (
	// ParallelEpsilon rejects rays (almost) parallel to a plane or triangle.
	ParallelEpsilon = 1e-8
	// FaceEpsilon is the distance within which a point is considered to lie
	// on one of the bounding planes of an axis-aligned box.
	FaceEpsilon = 1e-6
)

// Ray represents a ray with an origin, a direction and a valid parametric
// range [RangeMin, RangeMax]. The direction does not need unit length.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	rangeMin  float64
	rangeMax  float64
}

// NewRay creates a new ray valid for distances in [0, +Inf]
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, rangeMin: 0, rangeMax: math.Inf(1)}
}

// NewBoundedRay creates a ray valid for distances in [rangeMin, rangeMax].
// Callers must pass rangeMin <= rangeMax.
func NewBoundedRay(origin, direction Vec3, rangeMin, rangeMax float64) Ray {
	return Ray{Origin: origin, Direction: direction, rangeMin: rangeMin, rangeMax: rangeMax}
}

// RangeMin returns the lower bound of the valid parametric range
func (r Ray) RangeMin() float64 {
	return r.rangeMin
}

// RangeMax returns the upper bound of the valid parametric range
func (r Ray) RangeMax() float64 {
	return r.rangeMax
}

// WithRange returns a copy of the ray with a new parametric range
func (r Ray) WithRange(rangeMin, rangeMax float64) Ray {
	r.rangeMin = rangeMin
	r.rangeMax = rangeMax
	return r
}

// InRange reports whether distance is finite and lies in the current range
func (r Ray) InRange(distance float64) bool {
	return isFinite(distance) && r.rangeMin <= distance && distance <= r.rangeMax
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// NarrowTo shrinks the upper bound of the range to distance. It never
// widens the range and never moves RangeMax below RangeMin.
func (r *Ray) NarrowTo(distance float64) {
	if distance < r.rangeMin || !(distance < r.rangeMax) {
		return
	}
	r.rangeMax = distance
}

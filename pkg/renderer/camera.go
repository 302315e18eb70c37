package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-intersect/pkg/core"
)

// Pinhole is a pinhole sensor. Its image plane spans u, v in [-1, 1] with
// (-1, -1) the top-left corner, at distance front from the origin.
type Pinhole struct {
	origin core.Vec3
	left   core.Vec3 // Half-width of the image plane, pointing left
	up     core.Vec3 // Half-height of the image plane, pointing up
	front  core.Vec3 // Origin to image plane center
}

// NewPinhole creates a sensor from an explicit basis
func NewPinhole(origin, front, up, left core.Vec3) Pinhole {
	return Pinhole{origin: origin, left: left, up: up, front: front}
}

// NewPinholeFromUp derives the left vector as up × front, scaled to the
// length of up so the image plane is square.
func NewPinholeFromUp(origin, front, up core.Vec3) Pinhole {
	left := up.Cross(front).Normalize().Multiply(up.Length())
	return NewPinhole(origin, front, up, left)
}

// NewPinholeLookAt creates a sensor at eye looking at target with the given
// vertical field of view in degrees and width/height aspect ratio
func NewPinholeLookAt(eye, target, up core.Vec3, vfov, aspect float64) Pinhole {
	view := mgl64.LookAtV(eye.Mgl(), target.Mgl(), up.Mgl())

	// Rows of the view rotation are right, up and backward in world space
	right := core.FromMgl(view.Row(0).Vec3())
	trueUp := core.FromMgl(view.Row(1).Vec3())
	front := core.FromMgl(view.Row(2).Vec3()).Negate()

	halfHeight := math.Tan(mgl64.DegToRad(vfov) / 2)
	return NewPinhole(
		eye,
		front,
		trueUp.Multiply(halfHeight),
		right.Multiply(-halfHeight*aspect),
	)
}

// Origin returns the sensor position
func (p Pinhole) Origin() core.Vec3 { return p.origin }

// Front returns the vector from the origin to the image plane center
func (p Pinhole) Front() core.Vec3 { return p.front }

// Ray returns the unnormalized ray through image plane coordinates (u, v)
func (p Pinhole) Ray(u, v float64) core.Ray {
	direction := p.left.Multiply(-u).
		Add(p.up.Multiply(-v)).
		Add(p.front)
	return core.NewRay(p.origin, direction)
}

// PixelRay returns the ray through the center of pixel (i, j) of a
// width x height image
func (p Pinhole) PixelRay(i, j, width, height int) core.Ray {
	u := (float64(i)+0.5)*2/float64(width) - 1
	v := (float64(j)+0.5)*2/float64(height) - 1
	return p.Ray(u, v)
}

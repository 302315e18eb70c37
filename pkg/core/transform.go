package core

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingularTransform is returned when a matrix cannot be inverted
var ErrSingularTransform = errors.New("transform matrix is singular")

// singularThreshold bounds the determinant below which a matrix is treated
// as non-invertible.
const singularThreshold = 1e-12

// Transform is an affine transform stored together with its inverse
type Transform struct {
	forward mgl64.Mat4
	inverse mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{forward: mgl64.Ident4(), inverse: mgl64.Ident4()}
}

// Translate returns a translation by (x, y, z)
func Translate(x, y, z float64) Transform {
	return Transform{
		forward: mgl64.Translate3D(x, y, z),
		inverse: mgl64.Translate3D(-x, -y, -z),
	}
}

// Scale returns a scale by (x, y, z). All factors must be non-zero.
func Scale(x, y, z float64) Transform {
	return Transform{
		forward: mgl64.Scale3D(x, y, z),
		inverse: mgl64.Scale3D(1/x, 1/y, 1/z),
	}
}

// Rotate returns a rotation of angle radians around axis
func Rotate(angle float64, axis Vec3) Transform {
	a := axis.Normalize().Mgl()
	return Transform{
		forward: mgl64.HomogRotate3D(angle, a),
		inverse: mgl64.HomogRotate3D(-angle, a),
	}
}

// NewTransform builds a transform from an arbitrary affine matrix
func NewTransform(m mgl64.Mat4) (Transform, error) {
	if math.Abs(m.Det()) < singularThreshold {
		return Transform{}, ErrSingularTransform
	}
	return Transform{forward: m, inverse: m.Inv()}, nil
}

// Mul composes two transforms; other is applied first
func (t Transform) Mul(other Transform) Transform {
	return Transform{
		forward: t.forward.Mul4(other.forward),
		inverse: other.inverse.Mul4(t.inverse),
	}
}

// Inverse returns the inverse transform
func (t Transform) Inverse() Transform {
	return Transform{forward: t.inverse, inverse: t.forward}
}

// Matrix returns the forward matrix
func (t Transform) Matrix() mgl64.Mat4 {
	return t.forward
}

// InverseMatrix returns the inverse matrix
func (t Transform) InverseMatrix() mgl64.Mat4 {
	return t.inverse
}

// Point applies the full affine map to a point
func (t Transform) Point(p Vec3) Vec3 {
	return FromMgl(t.forward.Mul4x1(p.Mgl().Vec4(1)).Vec3())
}

// Vector applies the linear part to a direction
func (t Transform) Vector(v Vec3) Vec3 {
	return FromMgl(t.forward.Mat3().Mul3x1(v.Mgl()))
}

// Normal maps a surface normal with the inverse-transpose of the linear
// part. The result is not normalized.
func (t Transform) Normal(n Vec3) Vec3 {
	return FromMgl(t.inverse.Mat3().Transpose().Mul3x1(n.Mgl()))
}

// Ray maps a ray into the space of this transform, keeping its range.
// Distances along the mapped ray equal distances along the original.
func (t Transform) Ray(r Ray) Ray {
	r.Origin = t.Point(r.Origin)
	r.Direction = t.Vector(r.Direction)
	return r
}

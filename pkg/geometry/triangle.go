package geometry

import (
	"github.com/df07/go-intersect/pkg/core"
)

// Vertex is a triangle corner with its shading normal and tangent
type Vertex struct {
	Position core.Vec3
	Normal   core.Vec3 // Unit normal
	Tangent  core.Vec3 // Unit tangent, perpendicular to Normal
}

// TriangleHit is the minimal hit of a triangle: distance t and barycentric
// coordinates u, v of the second and third vertex.
type TriangleHit struct {
	T, U, V float64
}

// Triangle represents a single triangle with per-vertex normals and
// tangents for smooth shading
type Triangle struct {
	p0, p1, p2   core.Vec3
	n0, n1, n2   core.Vec3
	t0, t1, t2   core.Vec3
	edge1, edge2 core.Vec3 // Cached p1-p0 and p2-p0
}

// NewTriangleFromVertices creates a triangle from fully specified vertices
func NewTriangleFromVertices(v0, v1, v2 Vertex) Triangle {
	return Triangle{
		p0: v0.Position, p1: v1.Position, p2: v2.Position,
		n0: v0.Normal, n1: v1.Normal, n2: v2.Normal,
		t0: v0.Tangent, t1: v1.Tangent, t2: v2.Tangent,
		edge1: v1.Position.Subtract(v0.Position),
		edge2: v2.Position.Subtract(v0.Position),
	}
}

// NewTriangleWithNormals creates a smooth triangle from per-vertex normals.
// Tangents follow the first edge, made perpendicular to each normal.
func NewTriangleWithNormals(p0, p1, p2, n0, n1, n2 core.Vec3) Triangle {
	edge := p1.Subtract(p0).Normalize()
	return NewTriangleFromVertices(
		Vertex{Position: p0, Normal: n0, Tangent: core.Orthogonalize(edge, n0)},
		Vertex{Position: p1, Normal: n1, Tangent: core.Orthogonalize(edge, n1)},
		Vertex{Position: p2, Normal: n2, Tangent: core.Orthogonalize(edge, n2)},
	)
}

// NewTriangleWithNormal creates a flat triangle with a custom normal
func NewTriangleWithNormal(p0, p1, p2, normal core.Vec3) Triangle {
	n := normal.Normalize()
	return NewTriangleWithNormals(p0, p1, p2, n, n, n)
}

// NewTriangle creates a flat triangle whose normal is (p1-p0) × (p2-p0).
// The vertices must not be collinear.
func NewTriangle(p0, p1, p2 core.Vec3) Triangle {
	normal := p1.Subtract(p0).Cross(p2.Subtract(p0))
	return NewTriangleWithNormal(p0, p1, p2, normal)
}

// Vertices returns the three corner positions
func (t Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return t.p0, t.p1, t.p2
}

// Edges returns the cached edges p1-p0 and p2-p0
func (t Triangle) Edges() (core.Vec3, core.Vec3) {
	return t.edge1, t.edge2
}

// GeometricNormal returns the unit normal of the triangle's plane
func (t Triangle) GeometricNormal() core.Vec3 {
	return t.edge1.Cross(t.edge2).Normalize()
}

// TraceMinimal tests the triangle using the Möller-Trumbore algorithm
func (t Triangle) TraceMinimal(ray core.Ray) (TriangleHit, bool) {
	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -core.ParallelEpsilon && a < core.ParallelEpsilon {
		return TriangleHit{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.p0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return TriangleHit{}, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return TriangleHit{}, false
	}

	d := f * t.edge2.Dot(q)
	if !ray.InRange(d) {
		return TriangleHit{}, false
	}
	return TriangleHit{T: d, U: u, V: v}, true
}

// HitDistance returns the distance of a minimal hit
func (t Triangle) HitDistance(h TriangleHit) float64 { return h.T }

// Materialize interpolates the vertex normals and tangents at (u, v)
func (t Triangle) Materialize(ray core.Ray, h TriangleHit) core.Hit {
	w := 1.0 - h.U - h.V
	normal := t.n0.Multiply(w).Add(t.n1.Multiply(h.U)).Add(t.n2.Multiply(h.V)).Normalize()
	tangent := t.t0.Multiply(w).Add(t.t1.Multiply(h.U)).Add(t.t2.Multiply(h.V))
	return core.NewHit(h.T, ray.At(h.T), normal, core.Orthogonalize(tangent, normal))
}

// Trace returns the nearest hit within the ray's range
func (t Triangle) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[TriangleHit](t, ray)
}

// TraceShadow reports whether the triangle is hit within the ray's range
func (t Triangle) TraceShadow(ray core.Ray) bool {
	return TraceShadow[TriangleHit](t, ray)
}

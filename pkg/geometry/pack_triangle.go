package geometry

import (
	"gonum.org/v1/gonum/floats"

	"github.com/df07/go-intersect/pkg/core"
)

// TrianglePack runs Möller-Trumbore over a fixed number of triangles at
// once. Only the first vertex and the two edges are stored as columns; the
// shading attributes stay in the per-lane triangle records.
type TrianglePack struct {
	packLanes[Triangle]
	p0x, p0y, p0z []float64
	e1x, e1y, e1z []float64
	e2x, e2y, e2z []float64
}

// NewTrianglePack creates a pack of the given capacity. Fewer triangles
// than capacity are padded by repeating the last one.
func NewTrianglePack(capacity int, triangles []Triangle) (*TrianglePack, error) {
	lanes, err := newPackLanes("triangle", capacity, triangles)
	if err != nil {
		return nil, err
	}
	l := lanes.lanes
	return &TrianglePack{
		packLanes: lanes,
		p0x:       column(l, func(t Triangle) float64 { return t.p0.X }),
		p0y:       column(l, func(t Triangle) float64 { return t.p0.Y }),
		p0z:       column(l, func(t Triangle) float64 { return t.p0.Z }),
		e1x:       column(l, func(t Triangle) float64 { return t.edge1.X }),
		e1y:       column(l, func(t Triangle) float64 { return t.edge1.Y }),
		e1z:       column(l, func(t Triangle) float64 { return t.edge1.Z }),
		e2x:       column(l, func(t Triangle) float64 { return t.edge2.X }),
		e2y:       column(l, func(t Triangle) float64 { return t.edge2.Y }),
		e2z:       column(l, func(t Triangle) float64 { return t.edge2.Z }),
	}, nil
}

// triangleLanes is the per-call result of the batched test
type triangleLanes struct {
	valid   []bool
	t, u, v []float64
}

// mulAdd3To sets dst = ax*bx + ay*by + az*bz, using tmp as scratch
func mulAdd3To(dst, tmp, ax, ay, az, bx, by, bz []float64) {
	floats.MulTo(dst, ax, bx)
	floats.MulTo(tmp, ay, by)
	floats.Add(dst, tmp)
	floats.MulTo(tmp, az, bz)
	floats.Add(dst, tmp)
}

func (p *TrianglePack) lanesFor(ray core.Ray) triangleLanes {
	n := len(p.lanes)
	cols := scratch(n, 12)
	hx, hy, hz := cols[0], cols[1], cols[2]
	sx, sy, sz := cols[3], cols[4], cols[5]
	qx, qy, qz := cols[6], cols[7], cols[8]
	a, tmp, f := cols[9], cols[10], cols[11]
	d, o := ray.Direction, ray.Origin

	// h = direction × edge2
	floats.ScaleTo(hx, d.Y, p.e2z)
	floats.AddScaled(hx, -d.Z, p.e2y)
	floats.ScaleTo(hy, d.Z, p.e2x)
	floats.AddScaled(hy, -d.X, p.e2z)
	floats.ScaleTo(hz, d.X, p.e2y)
	floats.AddScaled(hz, -d.Y, p.e2x)

	// a = edge1 · h
	mulAdd3To(a, tmp, p.e1x, p.e1y, p.e1z, hx, hy, hz)

	valid := make([]bool, n)
	for i, ai := range a {
		valid[i] = !(ai > -core.ParallelEpsilon && ai < core.ParallelEpsilon)
		f[i] = 1.0 / ai
	}

	// s = origin - p0
	floats.ScaleTo(sx, -1, p.p0x)
	floats.AddConst(o.X, sx)
	floats.ScaleTo(sy, -1, p.p0y)
	floats.AddConst(o.Y, sy)
	floats.ScaleTo(sz, -1, p.p0z)
	floats.AddConst(o.Z, sz)

	// u = f (s · h), stored in a since the determinant is no longer needed
	u := a
	mulAdd3To(u, tmp, sx, sy, sz, hx, hy, hz)
	floats.Mul(u, f)

	// q = s × edge1, stored in h
	floats.MulTo(qx, sy, p.e1z)
	floats.MulTo(tmp, sz, p.e1y)
	floats.Sub(qx, tmp)
	floats.MulTo(qy, sz, p.e1x)
	floats.MulTo(tmp, sx, p.e1z)
	floats.Sub(qy, tmp)
	floats.MulTo(qz, sx, p.e1y)
	floats.MulTo(tmp, sy, p.e1x)
	floats.Sub(qz, tmp)

	// v = f (direction · q)
	v := hx
	floats.ScaleTo(v, d.X, qx)
	floats.AddScaled(v, d.Y, qy)
	floats.AddScaled(v, d.Z, qz)
	floats.Mul(v, f)

	// t = f (edge2 · q)
	t := hy
	mulAdd3To(t, tmp, p.e2x, p.e2y, p.e2z, qx, qy, qz)
	floats.Mul(t, f)

	for i := range valid {
		valid[i] = valid[i] && !(u[i] < 0.0 || u[i] > 1.0) && !(v[i] < 0.0 || u[i]+v[i] > 1.0)
	}
	return triangleLanes{valid: valid, t: t, u: u, v: v}
}

// TraceMinimal returns the nearest lane with its distance and barycentrics
func (p *TrianglePack) TraceMinimal(ray core.Ray) (IndexedHit[TriangleHit], bool) {
	r := p.lanesFor(ray)
	lane, d, ok := nearestLane(ray, r.valid, r.t, nil)
	if !ok {
		return IndexedHit[TriangleHit]{}, false
	}
	return IndexedHit[TriangleHit]{
		Minimal: TriangleHit{T: d, U: r.u[lane], V: r.v[lane]},
		Index:   lane,
	}, true
}

// HitDistance returns the distance of a minimal hit
func (p *TrianglePack) HitDistance(h IndexedHit[TriangleHit]) float64 { return h.Minimal.T }

// Materialize interpolates the winning triangle's attributes
func (p *TrianglePack) Materialize(ray core.Ray, h IndexedHit[TriangleHit]) core.Hit {
	return p.lanes[h.Index].Materialize(ray, h.Minimal)
}

// Trace returns the nearest hit within the ray's range
func (p *TrianglePack) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[IndexedHit[TriangleHit]](p, ray)
}

// TraceShadow reports whether any triangle is hit within the ray's range
func (p *TrianglePack) TraceShadow(ray core.Ray) bool {
	r := p.lanesFor(ray)
	return anyLane(ray, r.valid, r.t, nil)
}

package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/df07/go-intersect/pkg/core"
)

// SpherePack tests a fixed number of spheres at once, solving all the
// quadratics with column kernels.
type SpherePack struct {
	packLanes[Sphere]
	cx, cy, cz []float64
	radius2    []float64
}

// NewSpherePack creates a pack of the given capacity. Fewer spheres than
// capacity are padded by repeating the last one.
func NewSpherePack(capacity int, spheres []Sphere) (*SpherePack, error) {
	lanes, err := newPackLanes("sphere", capacity, spheres)
	if err != nil {
		return nil, err
	}
	return &SpherePack{
		packLanes: lanes,
		cx:        column(lanes.lanes, func(s Sphere) float64 { return s.center.X }),
		cy:        column(lanes.lanes, func(s Sphere) float64 { return s.center.Y }),
		cz:        column(lanes.lanes, func(s Sphere) float64 { return s.center.Z }),
		radius2:   column(lanes.lanes, func(s Sphere) float64 { return s.radius2 }),
	}, nil
}

// roots computes both quadratic roots of every lane
func (p *SpherePack) roots(ray core.Ray) (valid []bool, near, far []float64) {
	n := len(p.lanes)
	cols := scratch(n, 8)
	ocx, ocy, ocz, b, c, tmp, d1, d2 := cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], cols[6], cols[7]

	// oc = origin - center
	floats.ScaleTo(ocx, -1, p.cx)
	floats.AddConst(ray.Origin.X, ocx)
	floats.ScaleTo(ocy, -1, p.cy)
	floats.AddConst(ray.Origin.Y, ocy)
	floats.ScaleTo(ocz, -1, p.cz)
	floats.AddConst(ray.Origin.Z, ocz)

	a := ray.Direction.LengthSquared()

	// b = 2 direction · oc
	floats.ScaleTo(b, ray.Direction.X, ocx)
	floats.AddScaled(b, ray.Direction.Y, ocy)
	floats.AddScaled(b, ray.Direction.Z, ocz)
	floats.Scale(2, b)

	// c = |oc|² - r²
	floats.MulTo(c, ocx, ocx)
	floats.MulTo(tmp, ocy, ocy)
	floats.Add(c, tmp)
	floats.MulTo(tmp, ocz, ocz)
	floats.Add(c, tmp)
	floats.Sub(c, p.radius2)

	// Discriminant b² - 4ac, reusing tmp
	disc := tmp
	floats.MulTo(disc, b, b)
	floats.AddScaled(disc, -4*a, c)

	valid = make([]bool, n)
	sqrtDisc := c
	for i, dv := range disc {
		valid[i] = dv >= 0
		if valid[i] {
			sqrtDisc[i] = math.Sqrt(dv)
		} else {
			sqrtDisc[i] = math.NaN()
		}
	}

	inv2a := 0.5 / a
	floats.ScaleTo(d1, -1, b)
	floats.Sub(d1, sqrtDisc)
	floats.Scale(inv2a, d1)
	floats.ScaleTo(d2, -1, b)
	floats.Add(d2, sqrtDisc)
	floats.Scale(inv2a, d2)

	return valid, d1, d2
}

// TraceMinimal returns the nearest lane and its distance
func (p *SpherePack) TraceMinimal(ray core.Ray) (IndexedHit[float64], bool) {
	valid, near, far := p.roots(ray)
	lane, d, ok := nearestLane(ray, valid, near, far)
	if !ok {
		return IndexedHit[float64]{}, false
	}
	return IndexedHit[float64]{Minimal: d, Index: lane}, true
}

// HitDistance returns the distance of a minimal hit
func (p *SpherePack) HitDistance(h IndexedHit[float64]) float64 { return h.Minimal }

// Materialize builds the full hit through the winning sphere
func (p *SpherePack) Materialize(ray core.Ray, h IndexedHit[float64]) core.Hit {
	return p.lanes[h.Index].Materialize(ray, h.Minimal)
}

// Trace returns the nearest hit within the ray's range
func (p *SpherePack) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[IndexedHit[float64]](p, ray)
}

// TraceShadow reports whether any sphere is hit within the ray's range
func (p *SpherePack) TraceShadow(ray core.Ray) bool {
	valid, near, far := p.roots(ray)
	return anyLane(ray, valid, near, far)
}

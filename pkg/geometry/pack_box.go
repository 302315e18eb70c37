package geometry

import (
	"gonum.org/v1/gonum/floats"

	"github.com/df07/go-intersect/pkg/core"
)

// BoxPack runs the slab test over a fixed number of axis-aligned boxes
type BoxPack struct {
	packLanes[AxisAlignedBox]
	min [3][]float64
	max [3][]float64
}

// NewBoxPack creates a pack of the given capacity. Fewer boxes than
// capacity are padded by repeating the last one.
func NewBoxPack(capacity int, boxes []AxisAlignedBox) (*BoxPack, error) {
	lanes, err := newPackLanes("box", capacity, boxes)
	if err != nil {
		return nil, err
	}
	p := &BoxPack{packLanes: lanes}
	for axis := 0; axis < 3; axis++ {
		p.min[axis] = column(lanes.lanes, func(b AxisAlignedBox) float64 { return b.min.Axis(axis) })
		p.max[axis] = column(lanes.lanes, func(b AxisAlignedBox) float64 { return b.max.Axis(axis) })
	}
	return p, nil
}

// slabs computes the entry and exit distance of every lane
func (p *BoxPack) slabs(ray core.Ray) (valid []bool, near, far []float64) {
	n := len(p.lanes)
	cols := scratch(n, 8)
	inv := ray.Direction.Inverse()

	// Per-axis plane distances (bound - origin) / direction
	var t1, t2 [3][]float64
	for axis := 0; axis < 3; axis++ {
		t1[axis], t2[axis] = cols[2*axis], cols[2*axis+1]
		o, s := ray.Origin.Axis(axis), inv.Axis(axis)
		copy(t1[axis], p.min[axis])
		floats.AddConst(-o, t1[axis])
		floats.Scale(s, t1[axis])
		copy(t2[axis], p.max[axis])
		floats.AddConst(-o, t2[axis])
		floats.Scale(s, t2[axis])
	}

	near, far = cols[6], cols[7]
	valid = make([]bool, n)
	for i := 0; i < n; i++ {
		tmin := max(min(t1[0][i], t2[0][i]), min(t1[1][i], t2[1][i]), min(t1[2][i], t2[2][i]))
		tmax := min(max(t1[0][i], t2[0][i]), max(t1[1][i], t2[1][i]), max(t1[2][i], t2[2][i]))
		near[i], far[i] = tmin, tmax
		valid[i] = !(tmax < tmin)
	}
	return valid, near, far
}

// TraceMinimal returns the nearest lane and its distance
func (p *BoxPack) TraceMinimal(ray core.Ray) (IndexedHit[float64], bool) {
	valid, near, far := p.slabs(ray)
	lane, d, ok := nearestLane(ray, valid, near, far)
	if !ok {
		return IndexedHit[float64]{}, false
	}
	return IndexedHit[float64]{Minimal: d, Index: lane}, true
}

// HitDistance returns the distance of a minimal hit
func (p *BoxPack) HitDistance(h IndexedHit[float64]) float64 { return h.Minimal }

// Materialize builds the full hit through the winning box
func (p *BoxPack) Materialize(ray core.Ray, h IndexedHit[float64]) core.Hit {
	return p.lanes[h.Index].Materialize(ray, h.Minimal)
}

// Trace returns the nearest hit within the ray's range
func (p *BoxPack) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[IndexedHit[float64]](p, ray)
}

// TraceShadow reports whether any box is hit within the ray's range
func (p *BoxPack) TraceShadow(ray core.Ray) bool {
	valid, near, far := p.slabs(ray)
	return anyLane(ray, valid, near, far)
}

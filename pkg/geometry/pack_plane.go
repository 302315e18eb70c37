package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/df07/go-intersect/pkg/core"
)

// PlanePack tests a fixed number of planes at once. Normals and offsets are
// stored as columns so the per-plane dot products run as vector kernels
// across all lanes.
type PlanePack struct {
	packLanes[Plane]
	nx, ny, nz []float64
	offset     []float64
}

// NewPlanePack creates a pack of the given capacity. Fewer planes than
// capacity are padded by repeating the last one.
func NewPlanePack(capacity int, planes []Plane) (*PlanePack, error) {
	lanes, err := newPackLanes("plane", capacity, planes)
	if err != nil {
		return nil, err
	}
	return &PlanePack{
		packLanes: lanes,
		nx:        column(lanes.lanes, func(p Plane) float64 { return p.normal.X }),
		ny:        column(lanes.lanes, func(p Plane) float64 { return p.normal.Y }),
		nz:        column(lanes.lanes, func(p Plane) float64 { return p.normal.Z }),
		offset:    column(lanes.lanes, func(p Plane) float64 { return p.offset }),
	}, nil
}

// distances computes the candidate distance of every lane
func (p *PlanePack) distances(ray core.Ray) ([]bool, []float64) {
	n := len(p.lanes)
	cols := scratch(n, 2)
	den, dist := cols[0], cols[1]

	// den = direction · normal
	floats.ScaleTo(den, ray.Direction.X, p.nx)
	floats.AddScaled(den, ray.Direction.Y, p.ny)
	floats.AddScaled(den, ray.Direction.Z, p.nz)

	// dist = -(origin · normal + offset) / den
	floats.ScaleTo(dist, ray.Origin.X, p.nx)
	floats.AddScaled(dist, ray.Origin.Y, p.ny)
	floats.AddScaled(dist, ray.Origin.Z, p.nz)
	floats.Add(dist, p.offset)
	floats.Div(dist, den)
	floats.Scale(-1, dist)

	valid := make([]bool, n)
	for i, d := range den {
		valid[i] = math.Abs(d) >= core.ParallelEpsilon
	}
	return valid, dist
}

// TraceMinimal returns the nearest lane and its distance
func (p *PlanePack) TraceMinimal(ray core.Ray) (IndexedHit[float64], bool) {
	valid, dist := p.distances(ray)
	lane, d, ok := nearestLane(ray, valid, dist, nil)
	if !ok {
		return IndexedHit[float64]{}, false
	}
	return IndexedHit[float64]{Minimal: d, Index: lane}, true
}

// HitDistance returns the distance of a minimal hit
func (p *PlanePack) HitDistance(h IndexedHit[float64]) float64 { return h.Minimal }

// Materialize builds the full hit through the winning plane
func (p *PlanePack) Materialize(ray core.Ray, h IndexedHit[float64]) core.Hit {
	return p.lanes[h.Index].Materialize(ray, h.Minimal)
}

// Trace returns the nearest hit within the ray's range
func (p *PlanePack) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[IndexedHit[float64]](p, ray)
}

// TraceShadow reports whether any plane is hit within the ray's range
func (p *PlanePack) TraceShadow(ray core.Ray) bool {
	valid, dist := p.distances(ray)
	return anyLane(ray, valid, dist, nil)
}

package geometry

import (
	"errors"
	"fmt"

	"github.com/df07/go-intersect/pkg/core"
)

// Pack construction errors
var (
	ErrInvalidCapacity = errors.New("pack capacity must be positive")
	ErrEmptyPack       = errors.New("pack needs at least one element")
	ErrPackOverflow    = errors.New("more elements than pack capacity")
)

// packLanes holds the full primitive record of every lane. A pack always
// has exactly capacity lanes; lanes past size repeat the last real element,
// so they can only reproduce a candidate that is already counted.
type packLanes[P any] struct {
	lanes []P
	size  int
}

// newPackLanes validates the input and pads it to capacity
func newPackLanes[P any](kind string, capacity int, elements []P) (packLanes[P], error) {
	if capacity < 1 {
		return packLanes[P]{}, fmt.Errorf("%s pack capacity %d: %w", kind, capacity, ErrInvalidCapacity)
	}
	if len(elements) == 0 {
		return packLanes[P]{}, fmt.Errorf("%s pack: %w", kind, ErrEmptyPack)
	}
	if len(elements) > capacity {
		return packLanes[P]{}, fmt.Errorf("%s pack: %d elements for capacity %d: %w",
			kind, len(elements), capacity, ErrPackOverflow)
	}

	lanes := make([]P, capacity)
	copy(lanes, elements)
	last := elements[len(elements)-1]
	for i := len(elements); i < capacity; i++ {
		lanes[i] = last
	}

	if len(elements) < capacity {
		logger.Debugf("padded %s pack from %d to %d lanes", kind, len(elements), capacity)
	}
	return packLanes[P]{lanes: lanes, size: len(elements)}, nil
}

// Capacity returns the number of lanes
func (p packLanes[P]) Capacity() int { return len(p.lanes) }

// Len returns the number of real (non-padding) elements
func (p packLanes[P]) Len() int { return p.size }

// Elements returns the real elements in construction order
func (p packLanes[P]) Elements() []P { return p.lanes[:p.size] }

// column extracts one attribute of every lane into a contiguous column
func column[P any](lanes []P, attr func(P) float64) []float64 {
	c := make([]float64, len(lanes))
	for i, lane := range lanes {
		c[i] = attr(lane)
	}
	return c
}

// scratch allocates count columns of n lanes from a single block. Buffers
// are per call so concurrent traces never share state.
func scratch(n, count int) [][]float64 {
	block := make([]float64, n*count)
	columns := make([][]float64, count)
	for i := range columns {
		columns[i] = block[i*n : (i+1)*n : (i+1)*n]
	}
	return columns
}

// nearestLane selects the best candidate among the lanes using the List
// narrowing rule: each valid lane offers its near distance, or its far
// distance when the near one is out of the narrowed range, and a lane only
// wins over the current best when strictly closer. far may be nil.
func nearestLane(ray core.Ray, valid []bool, near, far []float64) (int, float64, bool) {
	local := ray
	lane, distance := -1, 0.0
	for i := range near {
		if !valid[i] {
			continue
		}
		d := near[i]
		if !local.InRange(d) {
			if far == nil || !local.InRange(far[i]) {
				continue
			}
			d = far[i]
		}
		if lane >= 0 && d >= distance {
			continue
		}
		lane, distance = i, d
		local.NarrowTo(d)
	}
	return lane, distance, lane >= 0
}

// anyLane reports whether some valid lane has an in-range candidate
func anyLane(ray core.Ray, valid []bool, near, far []float64) bool {
	for i := range near {
		if !valid[i] {
			continue
		}
		if ray.InRange(near[i]) || (far != nil && ray.InRange(far[i])) {
			return true
		}
	}
	return false
}

package geometry

import "github.com/df07/go-intersect/pkg/core"

// List is a dynamically sized collection of same-type elements traced by a
// linear scan. P is resolved at compile time, so the scan works on minimal
// hits and only the winner is materialized.
type List[M any, P Minimal[M]] struct {
	elements []P
}

// NewList creates a list holding a copy of elements
func NewList[M any, P Minimal[M]](elements ...P) *List[M, P] {
	l := &List[M, P]{elements: make([]P, len(elements))}
	copy(l.elements, elements)
	return l
}

// Add appends elements. Lists must not be modified while being traced.
func (l *List[M, P]) Add(elements ...P) {
	l.elements = append(l.elements, elements...)
}

// Len returns the number of elements
func (l *List[M, P]) Len() int {
	return len(l.elements)
}

// Elements returns the elements in insertion order
func (l *List[M, P]) Elements() []P {
	return l.elements
}

// TraceMinimal scans every element, narrowing a local copy of the ray after
// each accepted candidate so later elements only compete against the
// current best. Equal distances keep the first element found.
func (l *List[M, P]) TraceMinimal(ray core.Ray) (IndexedHit[M], bool) {
	var best IndexedHit[M]
	bestDistance := 0.0
	found := false

	local := ray
	for i, element := range l.elements {
		m, ok := element.TraceMinimal(local)
		if !ok {
			continue
		}
		d := element.HitDistance(m)
		if found && d >= bestDistance {
			continue
		}
		best = IndexedHit[M]{Minimal: m, Index: i}
		bestDistance = d
		found = true
		local.NarrowTo(d)
	}
	return best, found
}

// HitDistance returns the distance of a minimal hit
func (l *List[M, P]) HitDistance(h IndexedHit[M]) float64 {
	return l.elements[h.Index].HitDistance(h.Minimal)
}

// Materialize builds the full hit through the winning element
func (l *List[M, P]) Materialize(ray core.Ray, h IndexedHit[M]) core.Hit {
	return l.elements[h.Index].Materialize(ray, h.Minimal)
}

// Trace returns the nearest hit within the ray's range
func (l *List[M, P]) Trace(ray core.Ray) (core.Hit, bool) {
	return Trace[IndexedHit[M]](l, ray)
}

// TraceShadow stops at the first element that occludes the ray
func (l *List[M, P]) TraceShadow(ray core.Ray) bool {
	for _, element := range l.elements {
		if _, ok := element.TraceMinimal(ray); ok {
			return true
		}
	}
	return false
}

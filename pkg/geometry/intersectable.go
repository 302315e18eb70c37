package geometry

import (
	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/log"
)

var logger = log.New("geometry")

// Intersectable is the type-erased capability every primitive and aggregate
// satisfies. It is what heterogeneous containers such as Scene and Instance
// hold.
type Intersectable interface {
	// Trace returns the nearest hit within the ray's range
	Trace(ray core.Ray) (core.Hit, bool)
	// TraceShadow reports whether anything is hit within the ray's range
	TraceShadow(ray core.Ray) bool
}

// Minimal is the statically-resolved protocol behind every concrete
// primitive and same-type aggregate. TraceMinimal computes a cheap candidate
// descriptor of type M; Materialize expands the winning candidate into a
// full Hit.
type Minimal[M any] interface {
	TraceMinimal(ray core.Ray) (M, bool)
	HitDistance(m M) float64
	Materialize(ray core.Ray, m M) core.Hit
}

// Trace runs the minimal test and materializes a Hit only when it succeeds
func Trace[M any, P Minimal[M]](p P, ray core.Ray) (core.Hit, bool) {
	m, ok := p.TraceMinimal(ray)
	if !ok {
		return core.Hit{}, false
	}
	return p.Materialize(ray, m), true
}

// TraceShadow reports whether the minimal test finds any candidate
func TraceShadow[M any, P Minimal[M]](p P, ray core.Ray) bool {
	_, ok := p.TraceMinimal(ray)
	return ok
}

// IndexedHit is the minimal hit of a List or Pack: the winning element's
// own minimal hit plus its position in the aggregate.
type IndexedHit[M any] struct {
	Minimal M
	Index   int
}

package geometry

import "github.com/df07/go-intersect/pkg/core"

// Scene is a heterogeneous collection of intersectables. Objects are held
// through the type-erased interface and may be shared with other scenes or
// instances.
type Scene struct {
	objects []Intersectable
}

// NewScene creates a scene holding the given objects
func NewScene(objects ...Intersectable) *Scene {
	s := &Scene{objects: make([]Intersectable, 0, len(objects))}
	s.Add(objects...)
	return s
}

// Add appends objects. Nil objects are ignored.
func (s *Scene) Add(objects ...Intersectable) {
	for _, obj := range objects {
		if obj == nil {
			logger.Warning("ignoring nil object added to scene")
			continue
		}
		s.objects = append(s.objects, obj)
	}
}

// Len returns the number of objects
func (s *Scene) Len() int {
	return len(s.objects)
}

// Objects returns the objects in insertion order
func (s *Scene) Objects() []Intersectable {
	return s.objects
}

// Trace returns the nearest hit across all objects. Each object is traced
// with the ray narrowed to the best hit so far, so a later result is always
// strictly closer.
func (s *Scene) Trace(ray core.Ray) (core.Hit, bool) {
	var best core.Hit
	found := false

	local := ray
	for _, obj := range s.objects {
		hit, ok := obj.Trace(local)
		if !ok {
			continue
		}
		if found && hit.Distance() >= best.Distance() {
			continue
		}
		best = hit
		found = true
		local.NarrowTo(hit.Distance())
	}
	return best, found
}

// TraceShadow stops at the first object that occludes the ray
func (s *Scene) TraceShadow(ray core.Ray) bool {
	for _, obj := range s.objects {
		if obj.TraceShadow(ray) {
			return true
		}
	}
	return false
}

package geometry

import "github.com/df07/go-intersect/pkg/core"

// materialized attaches an opaque material payload to every hit of an
// object. The payload is never interpreted here.
type materialized struct {
	object   Intersectable
	material any
}

// WithMaterial wraps object so its hits carry material
func WithMaterial(object Intersectable, material any) Intersectable {
	return materialized{object: object, material: material}
}

func (m materialized) Trace(ray core.Ray) (core.Hit, bool) {
	hit, ok := m.object.Trace(ray)
	if !ok {
		return core.Hit{}, false
	}
	return hit.WithMaterial(m.material), true
}

func (m materialized) TraceShadow(ray core.Ray) bool {
	return m.object.TraceShadow(ray)
}

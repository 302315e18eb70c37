package geometry

import "github.com/df07/go-intersect/pkg/core"

// Instance places a shared object in the world through an affine transform.
// The object is defined in local space; rays are mapped into it and hits
// are mapped back out.
type Instance struct {
	transform core.Transform
	object    Intersectable
}

// NewInstance creates an instance of object under transform (local to world)
func NewInstance(transform core.Transform, object Intersectable) *Instance {
	return &Instance{transform: transform, object: object}
}

// Transform returns the local-to-world transform
func (i *Instance) Transform() core.Transform { return i.transform }

// Object returns the instanced object
func (i *Instance) Object() Intersectable { return i.object }

// Trace maps the ray into local space, traces the object and maps the hit
// back. The direction is not renormalized, so distances are shared between
// both spaces and the ray's range applies unchanged.
func (i *Instance) Trace(ray core.Ray) (core.Hit, bool) {
	local := i.transform.Inverse().Ray(ray)
	hit, ok := i.object.Trace(local)
	if !ok {
		return core.Hit{}, false
	}

	normal := i.transform.Normal(hit.Normal()).Normalize()
	tangent := core.Orthogonalize(i.transform.Vector(hit.Tangent()), normal)
	world := core.NewHit(hit.Distance(), ray.At(hit.Distance()), normal, tangent)
	return world.WithMaterial(hit.Material()), true
}

// TraceShadow maps the ray into local space and forwards the query
func (i *Instance) TraceShadow(ray core.Ray) bool {
	return i.object.TraceShadow(i.transform.Inverse().Ray(ray))
}

package core

// Hit is the result of a successful intersection: the distance along the
// ray, the world-space point and an orthonormal local frame. A Hit is
// immutable once constructed.
type Hit struct {
	distance  float64
	point     Vec3
	tangent   Vec3
	bitangent Vec3
	normal    Vec3
	material  any
}

// NewHit creates a hit from a unit normal and a unit tangent perpendicular
// to it. The bitangent completes the frame as normal × tangent.
func NewHit(distance float64, point, normal, tangent Vec3) Hit {
	checkFrame(normal, tangent)
	return Hit{
		distance:  distance,
		point:     point,
		tangent:   tangent,
		bitangent: normal.Cross(tangent),
		normal:    normal,
	}
}

// NewHitFromNormal creates a hit whose tangent is derived from the normal
func NewHitFromNormal(distance float64, point, normal Vec3) Hit {
	return NewHit(distance, point, normal, Perpendicular(normal))
}

// Distance returns the parametric distance along the ray
func (h Hit) Distance() float64 { return h.distance }

// Point returns the world-space intersection point
func (h Hit) Point() Vec3 { return h.point }

// Normal returns the unit surface normal
func (h Hit) Normal() Vec3 { return h.normal }

// Tangent returns the unit surface tangent
func (h Hit) Tangent() Vec3 { return h.tangent }

// Bitangent returns normal × tangent
func (h Hit) Bitangent() Vec3 { return h.bitangent }

// Material returns the payload attached by the owning object, or nil
func (h Hit) Material() any { return h.material }

// WithMaterial returns a copy of the hit carrying the given payload
func (h Hit) WithMaterial(material any) Hit {
	h.material = material
	return h
}

// LocalToGlobal maps a vector expressed in the (tangent, bitangent, normal)
// frame to world space.
func (h Hit) LocalToGlobal(local Vec3) Vec3 {
	return h.tangent.Multiply(local.X).
		Add(h.bitangent.Multiply(local.Y)).
		Add(h.normal.Multiply(local.Z))
}

// GlobalToLocal maps a world-space vector into the hit frame
func (h Hit) GlobalToLocal(global Vec3) Vec3 {
	return NewVec3(global.Dot(h.tangent), global.Dot(h.bitangent), global.Dot(h.normal))
}

package core

// MaterialID indexes into the scene's materials table. Primitives store an
// index rather than a pointer, so materials stay plain shared data.
type MaterialID int

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3       // Point of intersection
	Normal    Vec3       // Surface normal at intersection, oriented against the ray
	T         float64    // Parameter t along the ray
	FrontFace bool       // Whether the ray hit the front face
	Material  MaterialID // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

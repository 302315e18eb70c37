package scene

import (
	"math"

	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/geometry"
)

// TriangleFan returns n triangles forming a pyramid over the unit circle in
// the z=0 plane, with its apex at (0,0,-0.5). n below 3 is raised to 3.
func TriangleFan(n int) []geometry.Triangle {
	if n < 3 {
		logger.Warningf("triangle fan needs at least 3 triangles, got %d", n)
		n = 3
	}

	apex := core.NewVec3(0, 0, -0.5)
	rim := func(k int) core.Vec3 {
		angle := 2 * math.Pi * float64(k) / float64(n)
		return core.NewVec3(math.Cos(angle), math.Sin(angle), 0)
	}

	triangles := make([]geometry.Triangle, n)
	for k := range triangles {
		triangles[k] = geometry.NewTriangle(apex, rim(k+1), rim(k))
	}
	return triangles
}

// TriangleFanInstance packs TriangleFan(n) and tilts it about x
func TriangleFanInstance(n int) *geometry.Instance {
	fan := TriangleFan(n)
	pack := must(geometry.NewTrianglePack(len(fan), fan))
	return geometry.NewInstance(core.Rotate(math.Pi/6, core.NewVec3(1, 0, 0)), pack)
}

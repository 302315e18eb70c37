package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-intersect/pkg/core"
)

const tolerance = 1e-9

func vecClose(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// downZ is the ray used by the reference scenes: from (0,0,2) towards -z
func downZ() core.Ray {
	return core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))
}

func randomVec(rng *rand.Rand, scale float64) core.Vec3 {
	return core.NewVec3(
		(rng.Float64()*2-1)*scale,
		(rng.Float64()*2-1)*scale,
		(rng.Float64()*2-1)*scale,
	)
}

// randomRays returns rays starting outside a cube of half-size 6 and aimed at
// points inside it
func randomRays(rng *rand.Rand, n int) []core.Ray {
	rays := make([]core.Ray, n)
	for i := range rays {
		origin := randomVec(rng, 1).Normalize().Multiply(12)
		target := randomVec(rng, 4)
		rays[i] = core.NewRay(origin, target.Subtract(origin).Normalize())
	}
	return rays
}

// probe is a fake primitive at a fixed distance that records the upper end
// of every range it is asked about
type probe struct {
	distance float64
	seen     *[]float64
}

func (p probe) TraceMinimal(ray core.Ray) (float64, bool) {
	*p.seen = append(*p.seen, ray.RangeMax())
	return p.distance, ray.InRange(p.distance)
}

func (p probe) HitDistance(d float64) float64 { return d }

func (p probe) Materialize(ray core.Ray, d float64) core.Hit {
	return core.NewHitFromNormal(d, ray.At(d), core.NewVec3(0, 0, 1))
}

func TestTrace_MaterializesOnlyOnSuccess(t *testing.T) {
	var seen []float64
	p := probe{distance: 3, seen: &seen}

	hit, ok := Trace[float64](p, downZ())
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Distance() != 3 {
		t.Errorf("Expected distance 3, got %f", hit.Distance())
	}

	_, ok = Trace[float64](p, downZ().WithRange(0, 2))
	if ok {
		t.Error("Expected miss outside range")
	}
	if TraceShadow[float64](p, downZ().WithRange(0, 2)) {
		t.Error("Expected no shadow outside range")
	}
	if !TraceShadow[float64](p, downZ()) {
		t.Error("Expected shadow inside range")
	}
}

func TestReferenceScenes(t *testing.T) {
	spheres, err := NewSpherePack(4, []Sphere{NewSphere(core.Vec3{}, 1)})
	if err != nil {
		t.Fatal(err)
	}
	planes, err := NewPlanePack(8, []Plane{NewPlane(core.NewVec3(0, 0, 1), 0)})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		object   Intersectable
		expected float64
	}{
		{"plane", NewPlane(core.NewVec3(0, 0, 1), 0), 2},
		{"sphere", NewSphere(core.Vec3{}, 1), 1},
		{"triangle", NewTriangle(core.NewVec3(-1, -1, 0), core.NewVec3(1, -1, 0), core.NewVec3(0, 1, 0)), 2},
		{"box", NewAxisAlignedBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1)), 1},
		{"sphere list", NewList[float64](NewSphere(core.NewVec3(0, 0, -3), 1), NewSphere(core.Vec3{}, 1)), 1},
		{"sphere pack", spheres, 1},
		{"plane pack", planes, 2},
		{"scene", NewScene(planes, spheres), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := tt.object.Trace(downZ())
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if math.Abs(hit.Distance()-tt.expected) > tolerance {
				t.Errorf("Expected distance %f, got %f", tt.expected, hit.Distance())
			}
			if !vecClose(hit.Normal(), core.NewVec3(0, 0, 1), tolerance) {
				t.Errorf("Expected normal (0,0,1), got %v", hit.Normal())
			}
			if !tt.object.TraceShadow(downZ()) {
				t.Error("Expected shadow ray to be occluded")
			}
		})
	}
}

func TestWithMaterial(t *testing.T) {
	obj := WithMaterial(NewSphere(core.Vec3{}, 1), "glass")

	hit, ok := obj.Trace(downZ())
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Material() != "glass" {
		t.Errorf("Expected material glass, got %v", hit.Material())
	}
	if !obj.TraceShadow(downZ()) {
		t.Error("Expected shadow ray to be occluded")
	}

	plain, _ := NewSphere(core.Vec3{}, 1).Trace(downZ())
	if plain.Material() != nil {
		t.Errorf("Expected no material on bare sphere, got %v", plain.Material())
	}
}

package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/geometry"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-box", "Cornell Box"},
		{"sphere_grid", "Sphere Grid"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if result := titleCase(tc.input); result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestLookup_AllScenes(t *testing.T) {
	infos := List()
	if len(infos) == 0 {
		t.Fatal("Expected built-in scenes")
	}

	for _, info := range infos {
		t.Run(info.ID, func(t *testing.T) {
			preset, err := Lookup(info.ID)
			if err != nil {
				t.Fatal(err)
			}
			if preset.Object == nil {
				t.Fatal("Expected scene object")
			}
			if preset.DisplayName == "" || preset.Group == "" {
				t.Errorf("Expected display name and group, got %+v", preset.Info)
			}

			// The camera should see something through the image center
			if _, ok := preset.Object.Trace(preset.Camera.Ray(0.01, 0.02)); !ok {
				t.Errorf("Expected center ray of %s to hit", info.ID)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("teapot")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestCornellBox(t *testing.T) {
	box := CornellBox()
	if box.Len() != 2 {
		t.Fatalf("Expected 2 packs, got %d", box.Len())
	}

	tests := []struct {
		name           string
		ray            core.Ray
		expected       float64
		expectedNormal core.Vec3
	}{
		{"back wall", CornellCamera().Ray(0, 0), 2, core.NewVec3(0, 0, -1)},
		{"floor", core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0)), 1, core.NewVec3(0, 1, 0)},
		{"right sphere", core.NewRay(core.NewVec3(0.5, -0.65, -3), core.NewVec3(0, 0, 1)), 2.45, core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := box.Trace(tt.ray)
			if !ok {
				t.Fatal("Expected hit, got miss")
			}
			if math.Abs(hit.Distance()-tt.expected) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expected, hit.Distance())
			}
			if math.Abs(hit.Normal().Dot(tt.expectedNormal)-1) > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal())
			}
		})
	}

	if props := CornellBoxWithProps(); props.Len() != 4 {
		t.Errorf("Expected 4 packs with props, got %d", props.Len())
	}
}

func TestPacking_FirstHitDistance(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024} {
		planes := PackingPlanes(n)
		spheres := PackingSpheres(n)
		if len(planes) == 0 || len(planes) > n || len(spheres) > n {
			t.Fatalf("n=%d: got %d planes and %d spheres", n, len(planes), len(spheres))
		}

		planePack, err := geometry.NewPlanePack(n, planes)
		if err != nil {
			t.Fatal(err)
		}
		spherePack, err := geometry.NewSpherePack(n, spheres)
		if err != nil {
			t.Fatal(err)
		}

		objects := map[string]geometry.Intersectable{
			"plane list":  geometry.NewList[float64](planes...),
			"plane pack":  planePack,
			"sphere list": geometry.NewList[float64](spheres...),
			"sphere pack": spherePack,
		}
		for name, obj := range objects {
			hit, ok := obj.Trace(PackingRay())
			if !ok {
				t.Errorf("n=%d %s: expected hit, got miss", n, name)
				continue
			}
			if math.Abs(hit.Distance()-PackingDistance) > 1e-12 {
				t.Errorf("n=%d %s: expected distance %f, got %f", n, name, PackingDistance, hit.Distance())
			}
		}
	}
}

func TestPacking_EvenCountsFill(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 1024} {
		if got := len(PackingPlanes(n)); got != n {
			t.Errorf("Expected %d planes, got %d", n, got)
		}
		if got := len(PackingSpheres(n)); got != n {
			t.Errorf("Expected %d spheres, got %d", n, got)
		}
	}
}

func TestSphereGrid(t *testing.T) {
	grid := SphereGrid(20)
	if grid.Len() != 21 {
		t.Fatalf("Expected ground plane and 20 rows, got %d objects", grid.Len())
	}

	radius := 9.0 / 19 * 0.35
	hit, ok := grid.Trace(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.Distance()-(5-2*radius)) > 1e-9 {
		t.Errorf("Expected distance %f, got %f", 5-2*radius, hit.Distance())
	}
	if _, isColor := hit.Material().(core.Vec3); !isColor {
		t.Errorf("Expected color material, got %v", hit.Material())
	}

	ground, ok := grid.Trace(core.NewRay(core.NewVec3(-3, 5, -3), core.NewVec3(0, -1, 0)))
	if !ok || math.Abs(ground.Distance()-5) > 1e-9 || ground.Material() != nil {
		t.Errorf("Expected bare ground at distance 5, got %v (hit=%t)", ground.Distance(), ok)
	}
}

func TestTriangleFan(t *testing.T) {
	if fan := TriangleFan(1); len(fan) != 3 {
		t.Errorf("Expected fan raised to 3 triangles, got %d", len(fan))
	}

	fan := TriangleFan(8)
	list := geometry.NewList[geometry.TriangleHit](fan...)
	ray := core.NewRay(core.NewVec3(0.1, 0.05, -3), core.NewVec3(0, 0, 1))

	hit, ok := list.Trace(ray)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Distance() < 2.5 || hit.Distance() > 3 {
		t.Errorf("Expected distance between 2.5 and 3, got %f", hit.Distance())
	}
	if hit.Normal().Z >= 0 {
		t.Errorf("Expected normal facing the ray, got %v", hit.Normal())
	}

	if !TriangleFanInstance(8).TraceShadow(ray) {
		t.Error("Expected tilted fan to occlude the ray")
	}
}

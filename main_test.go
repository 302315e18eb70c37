package main

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneID     string
		expectError bool
	}{
		{"cornell box", "cornell-box", false},
		{"cornell props", "cornell-props", false},
		{"packing planes", "packing-planes", false},
		{"packing spheres", "packing-spheres", false},
		{"sphere grid", "sphere-grid", false},
		{"triangle fan", "triangle-fan", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := createScene(tt.sceneID)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneID)
				}
				if preset.Object != nil {
					t.Errorf("Expected no object for invalid scene '%s', got %T", tt.sceneID, preset.Object)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneID, err)
			}
			if preset.Object == nil {
				t.Errorf("Expected object for scene '%s', got nil", tt.sceneID)
			}
			if preset.ID != tt.sceneID {
				t.Errorf("Expected ID %s, got %s", tt.sceneID, preset.ID)
			}
		})
	}

	if _, err := createScene("nonexistent"); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"0,0,1", core.NewVec3(0, 0, 1), false},
		{" -1.5, 2 ,3e2", core.NewVec3(-1.5, 2, 300), false},
		{"1,2", core.Vec3{}, true},
		{"a,b,c", core.Vec3{}, true},
		{"", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := parseVec3(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, v)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if v != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, v)
			}
		})
	}
}

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes("1, 2,4,,8")
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{1, 2, 4, 8}
	if len(sizes) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, sizes)
	}
	for i := range expected {
		if sizes[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, sizes)
		}
	}

	for _, bad := range []string{"", "0", "-3", "four"} {
		if _, err := parseSizes(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestCompareSize(t *testing.T) {
	for _, kind := range []string{"planes", "spheres"} {
		for _, size := range []int{1, 4, 33} {
			c, err := compareSize(kind, size, time.Millisecond)
			if err != nil {
				t.Fatal(err)
			}
			if !c.OK() {
				t.Errorf("%s %d: expected distance 2 from both, got list %f pack %f", kind, size, c.ListFound, c.PackFound)
			}
			if c.Elements < 1 || c.Elements > size {
				t.Errorf("%s %d: expected between 1 and %d elements, got %d", kind, size, size, c.Elements)
			}
			if c.ListRate <= 0 || c.PackRate <= 0 {
				t.Errorf("%s %d: expected positive rates, got %f and %f", kind, size, c.ListRate, c.PackRate)
			}
		}
	}

	if _, err := compareSize("teapots", 4, time.Millisecond); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

func TestRaysPerSecond_Miss(t *testing.T) {
	preset, err := createScene("packing-spheres")
	if err != nil {
		t.Fatal(err)
	}
	away := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))
	distance, rate := raysPerSecond(preset.Object, away, time.Millisecond)
	if !math.IsNaN(distance) {
		t.Errorf("Expected NaN distance on miss, got %f", distance)
	}
	if rate <= 0 {
		t.Errorf("Expected positive rate, got %f", rate)
	}
}

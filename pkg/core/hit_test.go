package core

import (
	"math"
	"testing"
)

func TestNewHit_Frame(t *testing.T) {
	normal := NewVec3(0, 0, 1)
	tangent := NewVec3(1, 0, 0)
	hit := NewHit(2, NewVec3(1, 2, 3), normal, tangent)

	if hit.Distance() != 2 {
		t.Errorf("Expected distance 2, got %f", hit.Distance())
	}
	if hit.Point() != NewVec3(1, 2, 3) {
		t.Errorf("Expected point (1,2,3), got %v", hit.Point())
	}
	if hit.Normal() != normal || hit.Tangent() != tangent {
		t.Errorf("Expected normal %v and tangent %v, got %v and %v", normal, tangent, hit.Normal(), hit.Tangent())
	}
	if hit.Bitangent() != NewVec3(0, 1, 0) {
		t.Errorf("Expected bitangent (0,1,0), got %v", hit.Bitangent())
	}
	if hit.Material() != nil {
		t.Errorf("Expected no material, got %v", hit.Material())
	}
}

func TestNewHitFromNormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(0, -1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0.6, 0.8, 0),
	}

	for _, n := range normals {
		hit := NewHitFromNormal(1, Vec3{}, n)

		if math.Abs(hit.Tangent().Length()-1) > 1e-12 {
			t.Errorf("Normal %v: expected unit tangent, got %v", n, hit.Tangent())
		}
		if math.Abs(hit.Tangent().Dot(n)) > 1e-12 {
			t.Errorf("Normal %v: tangent %v is not perpendicular", n, hit.Tangent())
		}
		if math.Abs(hit.Bitangent().Length()-1) > 1e-12 {
			t.Errorf("Normal %v: expected unit bitangent, got %v", n, hit.Bitangent())
		}
	}
}

func TestHit_WithMaterial(t *testing.T) {
	hit := NewHitFromNormal(1, Vec3{}, NewVec3(0, 0, 1))
	tagged := hit.WithMaterial("red")

	if tagged.Material() != "red" {
		t.Errorf("Expected material red, got %v", tagged.Material())
	}
	if hit.Material() != nil {
		t.Errorf("Expected original hit unchanged, got %v", hit.Material())
	}
	if tagged.Distance() != hit.Distance() || tagged.Normal() != hit.Normal() {
		t.Error("Expected geometry to be preserved")
	}
}

func TestHit_LocalGlobalRoundTrip(t *testing.T) {
	hit := NewHitFromNormal(1, Vec3{}, NewVec3(1, 2, 2).Normalize())
	v := NewVec3(0.3, -1.2, 4)

	back := hit.GlobalToLocal(hit.LocalToGlobal(v))
	if !vecClose(back, v, 1e-12) {
		t.Errorf("Expected %v, got %v", v, back)
	}

	if got := hit.LocalToGlobal(NewVec3(0, 0, 1)); !vecClose(got, hit.Normal(), 1e-12) {
		t.Errorf("Expected local Z to map to normal %v, got %v", hit.Normal(), got)
	}
}

package scene

import (
	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/geometry"
	"github.com/df07/go-intersect/pkg/renderer"
)

// PackingDistance is the distance at which PackingRay first hits both
// packing sets
const PackingDistance = 2.0

// PackingRay starts at the origin and looks down +z
func PackingRay() core.Ray {
	return core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
}

// PackingCamera looks down +z from the origin
func PackingCamera() renderer.Pinhole {
	return renderer.NewPinholeFromUp(core.Vec3{}, core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0))
}

// packingSteps returns the parameters 2, 2+df, ... up to 6 shared by both
// packing sets; number elements fit in the result for every number >= 1
func packingSteps(number int) []float64 {
	df := 8.0 / float64(max(number-2, 1))
	var steps []float64
	for i := 0; ; i++ {
		f := 2.0 + float64(i)*df
		if f > 6.000001 {
			break
		}
		steps = append(steps, f)
	}
	return steps
}

// PackingPlanes returns at most number planes perpendicular to z. The
// nearest one in front of PackingRay is at PackingDistance; for even
// numbers the other half lies behind the origin.
func PackingPlanes(number int) []geometry.Plane {
	var planes []geometry.Plane
	normal := core.NewVec3(0, 0, -1)
	for _, f := range packingSteps(number) {
		planes = append(planes, geometry.NewPlaneFromPoint(core.NewVec3(0, 0, f), normal))
		if number%2 == 0 {
			planes = append(planes, geometry.NewPlaneFromPoint(core.NewVec3(0, 0, 1-f), normal))
		}
	}
	logger.Debugf("packing: %d planes for %d requested", len(planes), number)
	return planes
}

// PackingSpheres returns at most number spheres centered on the z axis
// whose nearest surface along PackingRay is at PackingDistance
func PackingSpheres(number int) []geometry.Sphere {
	var spheres []geometry.Sphere
	for _, f := range packingSteps(number) {
		spheres = append(spheres, geometry.NewSphere(core.NewVec3(0, 0, 2*f), f))
		if number%2 == 0 {
			spheres = append(spheres, geometry.NewSphere(core.NewVec3(0, 0, 0.5-2*f), f))
		}
	}
	logger.Debugf("packing: %d spheres for %d requested", len(spheres), number)
	return spheres
}

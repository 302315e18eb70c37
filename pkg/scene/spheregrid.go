package scene

import (
	"math"

	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/geometry"
	"github.com/df07/go-intersect/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to cubed LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	return core.NewVec3(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	).Clamp(0, 1)
}

// SphereGrid creates a ground plane and a gridSize x gridSize grid of
// spheres resting on it. Each row is one sphere pack tagged with an OKLCH
// color whose hue varies along x.
func SphereGrid(gridSize int) *geometry.Scene {
	gridSize = max(gridSize, 1)

	// Fit the grid in a 9x9 area centered at x=z=4.5
	targetArea := 9.0
	spacing := targetArea / float64(max(gridSize-1, 1))
	sphereRadius := max(0.02, min(0.35, spacing*0.35))

	s := geometry.NewScene(geometry.NewPlaneFromPoint(core.Vec3{}, core.NewVec3(0, 1, 0)))

	for i := 0; i < gridSize; i++ {
		x := float64(i)*spacing - targetArea/2.0 + 4.5
		row := make([]geometry.Sphere, gridSize)
		for j := range row {
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			row[j] = geometry.NewSphere(core.NewVec3(x, sphereRadius, z), sphereRadius)
		}

		hue := float64(i) / float64(max(gridSize-1, 1)) * 360.0
		color := oklchToRGB(0.65+0.1*math.Sin(float64(i)*0.5), 0.2, hue)
		s.Add(geometry.WithMaterial(must(geometry.NewSpherePack(gridSize, row)), color))
	}

	logger.Debugf("sphere grid: %d rows of %d spheres, radius %.3f", gridSize, gridSize, sphereRadius)
	return s
}

// SphereGridCamera frames the grid from above and behind
func SphereGridCamera() renderer.Pinhole {
	return renderer.NewPinholeLookAt(
		core.NewVec3(4.5, 6, 18),
		core.NewVec3(4.5, 0.8, 4.5),
		core.NewVec3(0, 1, 0),
		40, 1,
	)
}

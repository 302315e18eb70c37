package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/df07/go-intersect/pkg/geometry"
	"github.com/df07/go-intersect/pkg/log"
	"github.com/df07/go-intersect/pkg/renderer"
)

var logger = log.New("scene")

// ErrUnknownScene is returned by Lookup for an unregistered scene ID
var ErrUnknownScene = errors.New("unknown scene")

// Info describes a built-in scene
type Info struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string // Optional description
	Group       string // Grouping category
}

// Preset is a built-in scene ready to trace, with its default camera
type Preset struct {
	Info
	Object geometry.Intersectable
	Camera renderer.Pinhole
}

type entry struct {
	id          string
	description string
	group       string
	build       func() (geometry.Intersectable, renderer.Pinhole)
}

var registry = []entry{
	{"cornell-box", "Five walls and two spheres, each set in a pack", "Cornell", func() (geometry.Intersectable, renderer.Pinhole) {
		return CornellBox(), CornellCamera()
	}},
	{"cornell-props", "Cornell box with an extra triangle pack and box pack", "Cornell", func() (geometry.Intersectable, renderer.Pinhole) {
		return CornellBoxWithProps(), CornellCamera()
	}},
	{"packing-planes", "16 parallel planes in one pack", "Packing", func() (geometry.Intersectable, renderer.Pinhole) {
		return must(geometry.NewPlanePack(16, PackingPlanes(16))), PackingCamera()
	}},
	{"packing-spheres", "16 spheres along the z axis in one pack", "Packing", func() (geometry.Intersectable, renderer.Pinhole) {
		return must(geometry.NewSpherePack(16, PackingSpheres(16))), PackingCamera()
	}},
	{"sphere-grid", "Ground plane and a 20x20 grid of spheres, one pack per row", "Grids", func() (geometry.Intersectable, renderer.Pinhole) {
		return SphereGrid(20), SphereGridCamera()
	}},
	{"triangle-fan", "Tilted instance of a 12 triangle pyramid fan", "Grids", func() (geometry.Intersectable, renderer.Pinhole) {
		return TriangleFanInstance(12), CornellCamera()
	}},
}

// List returns the built-in scenes in registration order
func List() []Info {
	infos := make([]Info, len(registry))
	for i, e := range registry {
		infos[i] = e.info()
	}
	return infos
}

// Lookup builds the scene registered under id
func Lookup(id string) (Preset, error) {
	for _, e := range registry {
		if e.id == id {
			object, camera := e.build()
			logger.Debugf("built scene %s", id)
			return Preset{Info: e.info(), Object: object, Camera: camera}, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", id, ErrUnknownScene)
}

func (e entry) info() Info {
	return Info{
		ID:          e.id,
		DisplayName: titleCase(e.id),
		Description: e.description,
		Group:       e.group,
	}
}

// must unwraps a pack constructor on inputs that are known to be valid
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// titleCase converts kebab-case or snake_case to Title Case
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}

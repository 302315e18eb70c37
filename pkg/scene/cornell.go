package scene

import (
	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/geometry"
	"github.com/df07/go-intersect/pkg/renderer"
)

// cornellWalls are the back wall, ceiling, floor and the two side walls of
// a box spanning [-1, 1] on every axis, open towards -z
func cornellWalls() []geometry.Plane {
	return []geometry.Plane{
		geometry.NewPlaneFromPoint(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)),
		geometry.NewPlaneFromPoint(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)),
		geometry.NewPlaneFromPoint(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)),
		geometry.NewPlaneFromPoint(core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0)),
		geometry.NewPlaneFromPoint(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0)),
	}
}

// CornellBox creates the walls as a plane pack and two resting spheres as a
// sphere pack
func CornellBox() *geometry.Scene {
	walls := must(geometry.NewPlanePack(5, cornellWalls()))
	spheres := must(geometry.NewSpherePack(2, []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0.5, -0.65, -0.2), 0.35),
		geometry.NewSphere(core.NewVec3(-0.5, -0.65, 0.5), 0.35),
	}))

	logger.Debugf("cornell box: %d walls, %d spheres", walls.Len(), spheres.Len())
	return geometry.NewScene(walls, spheres)
}

// CornellBoxWithProps adds a folded pair of triangles and two boxes to
// CornellBox
func CornellBoxWithProps() *geometry.Scene {
	s := CornellBox()

	triangles := must(geometry.NewTrianglePack(2, []geometry.Triangle{
		geometry.NewTriangle(core.NewVec3(0, -1, -0.8), core.NewVec3(0, 0, -0.5), core.NewVec3(0.5, -1, -0.2)),
		geometry.NewTriangle(core.NewVec3(0, 0, -0.5), core.NewVec3(0, -1, -0.8), core.NewVec3(-0.5, -1, -0.2)),
	}))
	boxes := must(geometry.NewBoxPack(2, []geometry.AxisAlignedBox{
		geometry.NewAxisAlignedBox(core.NewVec3(-0.75, -1, 0), core.NewVec3(-0.25, -0.5, -0.5)),
		geometry.NewAxisAlignedBox(core.NewVec3(0.75, 1, 0), core.NewVec3(0.25, 0.5, 0.5)),
	}))

	s.Add(triangles, boxes)
	return s
}

// CornellCamera looks into the open side of the box
func CornellCamera() renderer.Pinhole {
	return renderer.NewPinholeFromUp(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 2), core.NewVec3(0, 1, 0))
}

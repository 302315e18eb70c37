package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/geometry"
)

// tileRenderer traces primary rays for pixels of a shared image. Tiles have
// non-overlapping bounds, so workers can write to the image concurrently.
type tileRenderer struct {
	object geometry.Intersectable
	camera Pinhole
	img    *image.RGBA
}

func newTileRenderer(object geometry.Intersectable, camera Pinhole, img *image.RGBA) *tileRenderer {
	return &tileRenderer{object: object, camera: camera, img: img}
}

// renderBounds shades every pixel within bounds by its hit normal
func (tr *tileRenderer) renderBounds(bounds image.Rectangle) Stats {
	width, height := tr.img.Bounds().Dx(), tr.img.Bounds().Dy()
	stats := Stats{Pixels: bounds.Dx() * bounds.Dy(), Tiles: 1}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			hit, ok := tr.object.Trace(tr.camera.PixelRay(i, j, width, height))
			if !ok {
				tr.img.SetRGBA(i, j, color.RGBA{A: 255})
				continue
			}
			stats.Hits++
			tr.img.SetRGBA(i, j, normalColor(hit.Normal()))
		}
	}
	return stats
}

// normalColor maps a unit normal to 0.5·n + 0.5 in each channel
func normalColor(n core.Vec3) color.RGBA {
	c := n.Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5)).Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}

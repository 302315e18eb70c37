package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-intersect/pkg/geometry"
	"github.com/df07/go-intersect/pkg/log"
)

var logger = log.New("renderer")

// ErrInvalidOptions is returned for non-positive image or tile sizes
var ErrInvalidOptions = errors.New("invalid render options")

// Options contains configuration for normal-map rendering
type Options struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	TileSize   int // Size of each square tile
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("image size %dx%d: %w", o.Width, o.Height, ErrInvalidOptions)
	}
	if o.TileSize <= 0 {
		return fmt.Errorf("tile size %d: %w", o.TileSize, ErrInvalidOptions)
	}
	return nil
}

// NormalMap renders object as seen by camera, coloring each pixel by the
// normal of its primary hit (0.5·n + 0.5) and black where nothing is hit.
// The object is traced concurrently and must not be modified meanwhile.
func NormalMap(ctx context.Context, object geometry.Intersectable, camera Pinhole, opts Options) (*image.RGBA, Stats, error) {
	if err := opts.validate(); err != nil {
		return nil, Stats{}, err
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	tiles := NewTileGrid(opts.Width, opts.Height, opts.TileSize)

	pool := NewWorkerPool(newTileRenderer(object, camera, img), len(tiles), opts.NumWorkers)
	logger.Infof("rendering %dx%d normal map in %d tiles (using %d workers)",
		opts.Width, opts.Height, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: i})
	}
	pool.Stop()

	stats := Stats{Workers: pool.GetNumWorkers()}
	var renderErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		stats.add(result.Stats)
	}
	stats.Duration = time.Since(start)

	if renderErr != nil {
		logger.Warningf("render stopped after %d of %d tiles: %v", stats.Tiles, len(tiles), renderErr)
		return nil, stats, renderErr
	}

	logger.Infof("rendered %d pixels in %v (%.1f%% hits)", stats.Pixels, stats.Duration, 100*stats.HitRatio())
	return img, stats, nil
}

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-intersect/pkg/core"
	"github.com/df07/go-intersect/pkg/geometry"
	"github.com/df07/go-intersect/pkg/renderer"
	"github.com/df07/go-intersect/pkg/scene"
)

// List the built-in scenes.
func listScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"ID", "Name", "Group", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Group, info.Description})
	}
	table.Render()
	logger.Noticef("built-in scenes\n%s", buf.String())
	return nil
}

// Trace a single ray.
func traceRay(ctx *cli.Context) error {
	setupLogging(ctx)

	preset, err := createScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	ray := preset.Camera.Ray(0, 0)
	if s := ctx.String("origin"); s != "" {
		if ray.Origin, err = parseVec3(s); err != nil {
			return err
		}
	}
	if s := ctx.String("direction"); s != "" {
		if ray.Direction, err = parseVec3(s); err != nil {
			return err
		}
	}

	logger.Noticef("%s: ray %v -> %v", preset.DisplayName, ray.Origin, ray.Direction)
	hit, ok := preset.Object.Trace(ray)
	if !ok {
		logger.Notice("miss")
		return nil
	}
	logger.Noticef("hit at distance %g\n  point     %v\n  normal    %v\n  tangent   %v\n  bitangent %v\n  material  %v",
		hit.Distance(), hit.Point(), hit.Normal(), hit.Tangent(), hit.Bitangent(), hit.Material())
	return nil
}

// comparison is one row of the compare table
type comparison struct {
	Size      int
	Elements  int
	ListRate  float64 // Rays per second
	PackRate  float64
	ListFound float64 // First hit distance, NaN on miss
	PackFound float64
}

// OK reports whether both aggregates found the expected first surface
func (c comparison) OK() bool {
	return c.ListFound == scene.PackingDistance && c.PackFound == scene.PackingDistance
}

// Compare list and pack throughput.
func compareAggregates(ctx *cli.Context) error {
	setupLogging(ctx)

	sizes, err := parseSizes(ctx.String("sizes"))
	if err != nil {
		return err
	}
	kind := ctx.String("kind")
	duration := ctx.Duration("duration")

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Size", "Elements", "List", "Pack", "Speedup", "Check"})

	failed := 0
	for _, size := range sizes {
		c, err := compareSize(kind, size, duration)
		if err != nil {
			return err
		}
		check := "ok"
		if !c.OK() {
			check = fmt.Sprintf("error (list %g, pack %g)", c.ListFound, c.PackFound)
			failed++
		}
		table.Append([]string{
			strconv.Itoa(c.Size),
			strconv.Itoa(c.Elements),
			fmt.Sprintf("%.3e rps", c.ListRate),
			fmt.Sprintf("%.3e rps", c.PackRate),
			fmt.Sprintf("%.2fx", c.PackRate/c.ListRate),
			check,
		})
	}
	table.Render()
	logger.Noticef("%s: list vs pack\n%s", kind, buf.String())

	if failed > 0 {
		return fmt.Errorf("%d of %d comparisons found the wrong distance", failed, len(sizes))
	}
	return nil
}

// compareSize measures the List and the Pack of one packing set
func compareSize(kind string, size int, duration time.Duration) (comparison, error) {
	var list, pack geometry.Intersectable
	var elements int

	switch kind {
	case "planes":
		planes := scene.PackingPlanes(size)
		p, err := geometry.NewPlanePack(size, planes)
		if err != nil {
			return comparison{}, err
		}
		list, pack, elements = geometry.NewList[float64](planes...), p, len(planes)
	case "spheres":
		spheres := scene.PackingSpheres(size)
		p, err := geometry.NewSpherePack(size, spheres)
		if err != nil {
			return comparison{}, err
		}
		list, pack, elements = geometry.NewList[float64](spheres...), p, len(spheres)
	default:
		return comparison{}, fmt.Errorf("unknown primitive kind %q (want planes or spheres)", kind)
	}

	ray := scene.PackingRay()
	c := comparison{Size: size, Elements: elements}
	c.ListFound, c.ListRate = raysPerSecond(list, ray, duration)
	c.PackFound, c.PackRate = raysPerSecond(pack, ray, duration)
	logger.Infof("%s %d: list %.3e rps, pack %.3e rps", kind, size, c.ListRate, c.PackRate)
	return c, nil
}

// raysPerSecond traces ray repeatedly for at least duration. It returns the
// hit distance of the last trace (NaN on miss) and the achieved rate.
func raysPerSecond(obj geometry.Intersectable, ray core.Ray, duration time.Duration) (float64, float64) {
	var hit core.Hit
	var ok bool
	n := 0

	start := time.Now()
	elapsed := time.Duration(0)
	for elapsed < duration || n == 0 {
		for i := 0; i < 64; i++ {
			hit, ok = obj.Trace(ray)
		}
		n += 64
		elapsed = time.Since(start)
	}

	distance := hit.Distance()
	if !ok {
		distance = math.NaN()
	}
	return distance, float64(n) / elapsed.Seconds()
}

// Render a normal map to a png file.
func renderNormalMap(ctx *cli.Context) error {
	setupLogging(ctx)

	preset, err := createScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	opts := renderer.DefaultOptions()
	opts.Width = ctx.Int("width")
	opts.Height = ctx.Int("height")
	opts.TileSize = ctx.Int("tile")
	opts.NumWorkers = ctx.Int("workers")

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := renderer.NormalMap(runCtx, preset.Object, preset.Camera, opts)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", out, err)
	}

	displayRenderStats(preset.DisplayName, stats)
	logger.Noticef("normal map saved as %s", out)
	return nil
}

func displayRenderStats(name string, stats renderer.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Pixels", "Hits", "Tiles", "Workers", "Render time", "Rays/s"})
	table.Append([]string{
		name,
		strconv.Itoa(stats.Pixels),
		fmt.Sprintf("%02.1f %%", 100*stats.HitRatio()),
		strconv.Itoa(stats.Tiles),
		strconv.Itoa(stats.Workers),
		stats.Duration.String(),
		fmt.Sprintf("%.3e", stats.RaysPerSecond()),
	})
	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

// createScene resolves a scene id from the command line
func createScene(id string) (scene.Preset, error) {
	if id == "" {
		return scene.Preset{}, errors.New("missing scene id")
	}
	return scene.Lookup(id)
}

// parseVec3 parses "x,y,z"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("vector %q: expected x,y,z", s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("vector %q: %w", s, err)
		}
		c[i] = v
	}
	return core.NewVec3(c[0], c[1], c[2]), nil
}

// parseSizes parses a comma separated list of positive integers
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("size %q: %w", p, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("size %d: must be positive", n)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		return nil, errors.New("no sizes given")
	}
	return sizes, nil
}

package main

import (
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/df07/go-intersect/pkg/log"
)

var logger = log.New("intersect")

func main() {
	app := cli.NewApp()
	app.Name = "intersect"
	app.Usage = "trace rays against packed geometry"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "list built-in scenes",
			Action: listScenes,
		},
		{
			Name:  "trace",
			Usage: "trace a single ray and print the hit",
			Description: `
Trace one ray against a built-in scene. Without --origin and --direction
the ray through the center of the scene camera is used.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell-box",
					Usage: "built-in scene id",
				},
				cli.StringFlag{
					Name:  "origin",
					Usage: "ray origin as x,y,z",
				},
				cli.StringFlag{
					Name:  "direction",
					Usage: "ray direction as x,y,z",
				},
			},
			Action: traceRay,
		},
		{
			Name:  "compare",
			Usage: "compare list and pack throughput",
			Description: `
For every size, build the packing set of planes or spheres as a List and as a
Pack of that capacity, trace the packing ray repeatedly and report rays per
second. Both aggregates must find the first surface at distance 2.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "planes",
					Usage: "primitive kind: planes or spheres",
				},
				cli.StringFlag{
					Name:  "sizes",
					Value: "1,2,4,8,16,32,64,128,256,512,1024",
					Usage: "comma separated pack capacities",
				},
				cli.DurationFlag{
					Name:  "duration, d",
					Value: time.Second,
					Usage: "measuring time per aggregate",
				},
			},
			Action: compareAggregates,
		},
		{
			Name:  "normalmap",
			Usage: "render a normal map of a built-in scene",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell-box",
					Usage: "built-in scene id",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: 64,
					Usage: "tile size",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of render workers (0 = one per CPU)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "normalmap.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: renderNormalMap,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

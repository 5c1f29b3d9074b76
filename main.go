package main

import (
	"os"

	"github.com/achilleasa/go-raytrace/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-raytrace"
	app.Usage = "render scenes using stochastic ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level explicitly (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:      "scene-info",
			Usage:     "build a scene and display information about its BVH",
			ArgsUsage: "scene_name",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for scene generation",
				},
			},
			Action: cmd.ShowSceneInfo,
		},
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build one of the built-in scenes, trace it on a pool of cpu tracers and save
the result as a png image. Rendering the same scene with the same seed always
produces the same image regardless of the number of workers.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "random",
					Usage: "built-in scene to render",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 225,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 50,
					Usage: "max number of scattering events per path",
				},
				cli.Float64Flag{
					Name:  "epsilon",
					Value: 0.001,
					Usage: "min hit distance for secondary rays",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "seed for scene generation and sampling",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 0,
					Usage: "number of cpu tracers; 0 uses one tracer per cpu",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "override the scene camera aperture",
				},
				cli.Float64Flag{
					Name:  "yaw",
					Usage: "rotate camera around the up axis (radians)",
				},
				cli.Float64Flag{
					Name:  "pitch",
					Usage: "rotate camera around its side axis (radians)",
				},
				cli.BoolTFlag{
					Name:  "bvh",
					Usage: "accelerate ray intersections with a BVH",
				},
				cli.BoolFlag{
					Name:  "perfect-scheduler",
					Usage: "balance blocks using measured tracer throughput",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

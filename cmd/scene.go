package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/scene/bvh"
	"github.com/achilleasa/go-raytrace/scene/preset"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, p := range preset.All() {
		table.Append([]string{p.Name, p.Description})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}

// Build a scene and its BVH and display information about them.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene name argument")
	}

	p, err := preset.Get(ctx.Args().First())
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(ctx.Int64("seed")))
	sc := p.Build(1.0, rng)
	stats := bvh.Compile(sc, rng)

	displaySceneStats(p.Name, sc, stats)
	return nil
}

func displaySceneStats(name string, sc *scene.Scene, stats bvh.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Scene", name})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", stats.Primitives)})
	table.Append([]string{"BVH nodes", fmt.Sprintf("%d", stats.Nodes)})
	table.Append([]string{"BVH leafs", fmt.Sprintf("%d", stats.Leafs)})
	table.Append([]string{"BVH depth", fmt.Sprintf("%d", stats.MaxDepth)})
	table.Append([]string{"Missing boxes", fmt.Sprintf("%d", stats.MissingBoxes)})
	table.Append([]string{"Build time", stats.BuildTime.String()})
	if sc.Camera != nil {
		table.Append([]string{"Camera", sc.Camera.String()})
		if box, ok := sc.Root.BoundingBox(sc.Camera.Time0, sc.Camera.Time1); ok {
			table.Append([]string{"Bounds", fmt.Sprintf("%s - %s", box.Min, box.Max)})
		}
	}
	table.Render()

	logger.Noticef("scene information\n%s", buf.String())
}

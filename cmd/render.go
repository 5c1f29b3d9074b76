package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/achilleasa/go-raytrace/renderer"
	"github.com/achilleasa/go-raytrace/scene/bvh"
	"github.com/achilleasa/go-raytrace/scene/preset"
	"github.com/achilleasa/go-raytrace/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame of a built-in scene and save it as a png file.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW:          uint32(ctx.Int("width")),
		FrameH:          uint32(ctx.Int("height")),
		SamplesPerPixel: uint32(ctx.Int("spp")),
		MaxDepth:        uint32(ctx.Int("depth")),
		Epsilon:         ctx.Float64("epsilon"),
		Seed:            ctx.Int64("seed"),
		NumTracers:      ctx.Int("workers"),
	}
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return renderer.ErrInvalidFrameSize
	}

	// Build scene
	p, err := preset.Get(ctx.String("scene"))
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	sc := p.Build(float64(opts.FrameW)/float64(opts.FrameH), rng)
	if sc.Objects.Len() == 0 {
		return errors.New("scene contains no primitives")
	}

	// Apply camera overrides
	if ctx.IsSet("aperture") {
		sc.Camera.Aperture = ctx.Float64("aperture")
	}
	sc.Camera.Yaw = ctx.Float64("yaw")
	sc.Camera.Pitch = ctx.Float64("pitch")
	sc.Camera.Update()

	if ctx.BoolT("bvh") {
		stats := bvh.Compile(sc, rng)
		logger.Infof("built BVH over %d primitive(s) in %s", stats.Primitives, stats.BuildTime)
	}

	// Create renderer
	var scheduler tracer.BlockScheduler = tracer.NaiveScheduler()
	if ctx.Bool("perfect-scheduler") {
		scheduler = tracer.PerfectScheduler()
	}
	r, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	// Abort on ctrl+c
	renderCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Noticef("rendering %q at %dx%d with %d spp", p.Name, opts.FrameW, opts.FrameH, opts.SamplesPerPixel)
	if err = r.Render(renderCtx); err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	return writePNG(ctx.String("out"), r)
}

func writePNG(imgFile string, r renderer.Renderer) error {
	f, err := os.Create(imgFile)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	if err = png.Encode(f, r.Frame()); err != nil {
		return fmt.Errorf("error encoding png file: %s", err.Error())
	}
	logger.Noticef("wrote frame to %s in %d ms", imgFile, time.Since(start).Nanoseconds()/1e6)
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block height", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/tracer"
	"github.com/achilleasa/go-raytrace/tracer/cpu"
)

// A renderer that splits each frame into row blocks and traces them in
// parallel on a pool of cpu tracers.
type defaultRenderer struct {
	logger log.Logger

	options   Options
	scheduler tracer.BlockScheduler
	tracers   []tracer.Tracer

	frameBuffer []uint8

	blockAssignments []uint32
	stats            FrameStats
}

// Create a new renderer for the given scene using the specified block scheduler.
func NewDefault(sc *scene.Scene, scheduler tracer.BlockScheduler, opts Options) (Renderer, error) {
	if sc == nil || sc.Root == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	r := &defaultRenderer{
		logger:      log.New("renderer"),
		options:     opts,
		scheduler:   scheduler,
		frameBuffer: make([]uint8, opts.FrameW*opts.FrameH*4),
	}

	for idx := 0; idx < opts.NumTracers; idx++ {
		tr := cpu.NewTracer(fmt.Sprintf("cpu-%02d", idx))
		if err := tr.Setup(opts.FrameW, opts.FrameH, r.frameBuffer); err != nil {
			tr.Close()
			r.Close()
			return nil, err
		}
		tr.AppendChange(tracer.SetScene, sc)
		r.tracers = append(r.tracers, tr)
	}
	if len(r.tracers) == 0 {
		return nil, ErrNoTracers
	}

	r.logger.Infof("attached %d tracer(s) for a %dx%d frame", len(r.tracers), opts.FrameW, opts.FrameH)
	return r, nil
}

// Shutdown renderer and any attached tracer.
func (r *defaultRenderer) Close() {
	for _, tr := range r.tracers {
		tr.Close()
	}
	r.tracers = nil
}

// Render a frame by assigning one contiguous block of rows to each tracer.
func (r *defaultRenderer) Render(ctx context.Context) error {
	if len(r.tracers) == 0 {
		return ErrNoTracers
	}
	if ctx.Err() != nil {
		return ErrInterrupted
	}

	r.blockAssignments = r.scheduler.Schedule(r.tracers, r.options.FrameH)
	r.logger.Debugf("block assignment: %v", r.blockAssignments)

	doneChan := make(chan uint32, len(r.tracers))
	errChan := make(chan error, len(r.tracers))
	abortChan := make(chan struct{})

	start := time.Now()
	var blockY uint32
	pending := 0
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		if blockH == 0 {
			continue
		}
		tr.Enqueue(tracer.BlockRequest{
			BlockY:          blockY,
			BlockH:          blockH,
			SamplesPerPixel: r.options.SamplesPerPixel,
			MaxDepth:        r.options.MaxDepth,
			Epsilon:         r.options.Epsilon,
			Seed:            r.options.Seed,
			DoneChan:        doneChan,
			ErrChan:         errChan,
			AbortChan:       abortChan,
		})
		blockY += blockH
		pending++
	}

	var renderedRows uint32
	for ; pending > 0; pending-- {
		select {
		case rows := <-doneChan:
			renderedRows += rows
			r.logger.Infof(
				"frame progress: %d/%d rows (%3.0f%%)",
				renderedRows, r.options.FrameH, 100.0*float32(renderedRows)/float32(r.options.FrameH),
			)
		case err := <-errChan:
			r.abort(abortChan, pending-1, doneChan, errChan)
			return err
		case <-ctx.Done():
			r.abort(abortChan, pending, doneChan, errChan)
			return ErrInterrupted
		}
	}

	r.collectStats(time.Since(start))
	return nil
}

// Signal in-flight blocks to stop and wait until every tracer has replied
// so the next frame starts with idle tracers.
func (r *defaultRenderer) abort(abortChan chan struct{}, pending int, doneChan <-chan uint32, errChan <-chan error) {
	close(abortChan)
	for ; pending > 0; pending-- {
		select {
		case <-doneChan:
		case <-errChan:
		}
	}
	r.logger.Debug("aborted in-flight blocks")
}

func (r *defaultRenderer) collectStats(renderTime time.Duration) {
	r.stats = FrameStats{
		Tracers:    make([]TracerStat, 0, len(r.tracers)),
		RenderTime: renderTime,
	}
	for idx, tr := range r.tracers {
		blockH := r.blockAssignments[idx]
		stat := TracerStat{
			Id:           tr.Id(),
			BlockH:       blockH,
			FramePercent: 100.0 * float32(blockH) / float32(r.options.FrameH),
		}
		if blockH != 0 {
			stat.RenderTime = tr.Stats().RenderTime
		}
		r.stats.Tracers = append(r.stats.Tracers, stat)
	}
}

// Get the rendered frame.
func (r *defaultRenderer) Frame() *image.RGBA {
	return &image.RGBA{
		Pix:    r.frameBuffer,
		Stride: int(r.options.FrameW) * 4,
		Rect:   image.Rect(0, 0, int(r.options.FrameW), int(r.options.FrameH)),
	}
}

// Get render statistics.
func (r *defaultRenderer) Stats() FrameStats {
	return r.stats
}

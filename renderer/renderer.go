package renderer

import (
	"context"
	"image"
)

type Renderer interface {
	// Render frame. Returns ErrInterrupted if ctx is done before all
	// blocks complete.
	Render(ctx context.Context) error

	// Get the rendered frame. The image shares the renderer's buffer.
	Frame() *image.RGBA

	// Shutdown renderer and any attached tracer.
	Close()

	// Get render statistics.
	Stats() FrameStats
}

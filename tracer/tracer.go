package tracer

import (
	"errors"
	"time"
)

var (
	ErrNoSceneData = errors.New("tracer: no scene data")
	ErrNoCamera    = errors.New("tracer: no camera defined")
	ErrNotSetUp    = errors.New("tracer: frame buffer not set up")
	ErrAborted     = errors.New("tracer: block request aborted")
)

type ChangeType uint8

const (
	SetScene ChangeType = iota
	UpdateCamera
)

// A unit of work that is processed by a tracer.
type BlockRequest struct {
	// Block start row and height. Row 0 is the top of the frame.
	BlockY uint32
	BlockH uint32

	// The number of emitted rays per traced pixel.
	SamplesPerPixel uint32

	// The max number of scattering events per path.
	MaxDepth uint32

	// Lower bound for hit distances; avoids self-intersection.
	Epsilon float64

	// The frame seed. Each row derives its own random stream from it so
	// the output does not depend on how rows are split into blocks.
	Seed int64

	// A channel to signal on block completion with the number of completed rows.
	DoneChan chan<- uint32

	// A channel to signal if an error occurs.
	ErrChan chan<- error

	// Closed by the requester to stop rendering the block. The tracer
	// replies with ErrAborted on ErrChan. A nil channel never aborts.
	AbortChan <-chan struct{}
}

// Tracer statistics.
type Stats struct {
	// The rendered block height
	BlockH uint32

	// The time for rendering this block.
	RenderTime time.Duration

	// The time spent applying pending changes before rendering.
	UpdateTime time.Duration
}

type Tracer interface {
	// Get tracer id.
	Id() string

	// Shutdown and cleanup tracer.
	Close()

	// Get the tracers computation speed estimate compared to a
	// baseline single-core implementation.
	SpeedEstimate() float32

	// Setup the tracer to write RGBA pixels into a frameW x frameH buffer.
	Setup(frameW, frameH uint32, frameBuffer []uint8) error

	// Enqueue block request.
	Enqueue(BlockRequest)

	// Append a change to the tracer's update buffer.
	AppendChange(ChangeType, interface{})

	// Apply all pending changes from the update buffer.
	ApplyPendingChanges() error

	// Retrieve last frame statistics.
	Stats() *Stats
}

package renderer

import (
	"runtime"

	"github.com/achilleasa/go-raytrace/tracer/integrator"
)

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Max number of scattering events per path.
	MaxDepth uint32

	// Number of samples.
	SamplesPerPixel uint32

	// Lower bound for hit distances. Zero selects the integrator default.
	Epsilon float64

	// Frame seed. Rendering the same scene with the same seed always
	// produces the same image.
	Seed int64

	// Number of cpu tracers. Zero selects one tracer per cpu.
	NumTracers int
}

// Fill in defaults and validate the options.
func (opts *Options) normalize() error {
	if opts.FrameW == 0 || opts.FrameH == 0 {
		return ErrInvalidFrameSize
	}
	if opts.SamplesPerPixel == 0 {
		return ErrNoSamples
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = integrator.DefaultMaxDepth
	}
	if opts.Epsilon <= 0 {
		opts.Epsilon = integrator.DefaultEpsilon
	}
	if opts.NumTracers <= 0 {
		opts.NumTracers = runtime.NumCPU()
	}
	return nil
}

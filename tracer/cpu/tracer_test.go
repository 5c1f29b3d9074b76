package cpu

import (
	"bytes"
	"testing"
	"time"

	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/tracer"
	"github.com/achilleasa/go-raytrace/types"
)

func testScene() *scene.Scene {
	sc := scene.NewScene()
	sc.Add(scene.NewSphere(types.XYZ(0, 0, -1), 0.5, scene.NewLambertian(types.RGB(0.1, 0.2, 0.5))))
	sc.Add(scene.NewSphere(types.XYZ(0, -100.5, -1), 100, scene.NewLambertian(types.RGB(0.8, 0.8, 0))))
	sc.SetCamera(scene.NewCamera(scene.CameraOptions{
		LookFrom: types.XYZ(0, 0, 0),
		LookAt:   types.XYZ(0, 0, -1),
		Up:       types.XYZ(0, 1, 0),
		VFov:     90,
		Aspect:   2,
	}))
	return sc
}

// Enqueue a request and wait for its outcome.
func renderRows(t *testing.T, tr tracer.Tracer, blockY, blockH uint32) error {
	doneChan := make(chan uint32, 1)
	errChan := make(chan error, 1)
	tr.Enqueue(tracer.BlockRequest{
		BlockY:          blockY,
		BlockH:          blockH,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		Seed:            7,
		DoneChan:        doneChan,
		ErrChan:         errChan,
	})

	select {
	case rows := <-doneChan:
		if rows != blockH {
			t.Fatalf("expected tracer to report %d completed rows; got %d", blockH, rows)
		}
		return nil
	case err := <-errChan:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for block")
	}
	return nil
}

func TestSetup(t *testing.T) {
	tr := NewTracer("test")
	defer tr.Close()

	type spec struct {
		frameW, frameH uint32
		bufLen         int
		expErr         bool
	}
	specs := []spec{
		{0, 4, 0, true},
		{4, 0, 0, true},
		{4, 4, 63, true},
		{4, 4, 64, false},
	}

	for specIndex, s := range specs {
		err := tr.Setup(s.frameW, s.frameH, make([]uint8, s.bufLen))
		if (err != nil) != s.expErr {
			t.Fatalf("[spec %d] expected error to be %t; got %v", specIndex, s.expErr, err)
		}
	}
}

func TestRenderWithoutScene(t *testing.T) {
	tr := NewTracer("test")
	defer tr.Close()

	if err := tr.Setup(4, 2, make([]uint8, 4*2*4)); err != nil {
		t.Fatal(err)
	}
	if err := renderRows(t, tr, 0, 2); err != tracer.ErrNoSceneData {
		t.Fatalf("expected ErrNoSceneData; got %v", err)
	}
}

func TestRenderWithoutSetup(t *testing.T) {
	tr := NewTracer("test")
	defer tr.Close()

	tr.AppendChange(tracer.SetScene, testScene())
	if err := renderRows(t, tr, 0, 2); err != tracer.ErrNotSetUp {
		t.Fatalf("expected ErrNotSetUp; got %v", err)
	}
}

func TestInvalidChanges(t *testing.T) {
	tr := NewTracer("test")
	defer tr.Close()

	tr.AppendChange(tracer.SetScene, "not a scene")
	if err := tr.ApplyPendingChanges(); err != tracer.ErrNoSceneData {
		t.Fatalf("expected ErrNoSceneData; got %v", err)
	}

	tr = NewTracer("test-2")
	defer tr.Close()
	tr.AppendChange(tracer.UpdateCamera, (*scene.Camera)(nil))
	if err := tr.ApplyPendingChanges(); err != tracer.ErrNoCamera {
		t.Fatalf("expected ErrNoCamera; got %v", err)
	}
}

func TestRenderBlock(t *testing.T) {
	const frameW, frameH = 8, 4
	tr := NewTracer("test")
	defer tr.Close()

	frameBuffer := make([]uint8, frameW*frameH*4)
	if err := tr.Setup(frameW, frameH, frameBuffer); err != nil {
		t.Fatal(err)
	}
	tr.AppendChange(tracer.SetScene, testScene())

	if err := renderRows(t, tr, 1, 2); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < frameH; y++ {
		row := frameBuffer[y*frameW*4 : (y+1)*frameW*4]
		rendered := y == 1 || y == 2
		for x := 0; x < frameW; x++ {
			alpha := row[x*4+3]
			if rendered && alpha != 255 {
				t.Fatalf("expected pixel (%d, %d) to be opaque", x, y)
			}
			if !rendered && alpha != 0 {
				t.Fatalf("expected pixel (%d, %d) outside the block to be untouched", x, y)
			}
		}
	}

	stats := tr.Stats()
	if stats.BlockH != 2 || stats.RenderTime <= 0 {
		t.Fatalf("expected stats for a 2 row block; got %+v", *stats)
	}

	if err := renderRows(t, tr, 3, 2); err == nil {
		t.Fatal("expected an error for a block exceeding the frame height")
	}
}

func TestBlockSplitDoesNotChangeOutput(t *testing.T) {
	const frameW, frameH = 8, 6
	sc := testScene()

	render := func(blocks ...uint32) []uint8 {
		tr := NewTracer("test")
		defer tr.Close()

		frameBuffer := make([]uint8, frameW*frameH*4)
		if err := tr.Setup(frameW, frameH, frameBuffer); err != nil {
			t.Fatal(err)
		}
		tr.AppendChange(tracer.SetScene, sc)

		var blockY uint32
		for _, blockH := range blocks {
			if err := renderRows(t, tr, blockY, blockH); err != nil {
				t.Fatal(err)
			}
			blockY += blockH
		}
		return frameBuffer
	}

	whole := render(frameH)
	if split := render(1, 3, 2); !bytes.Equal(whole, split) {
		t.Fatal("expected identical output regardless of block split")
	}
}

func TestEnqueueAfterClose(t *testing.T) {
	tr := NewTracer("test")
	tr.Close()
	// Closing twice is a no-op
	tr.Close()

	errChan := make(chan error, 1)
	tr.Enqueue(tracer.BlockRequest{ErrChan: errChan, DoneChan: make(chan uint32, 1)})
	if err := <-errChan; err != ErrClosed {
		t.Fatalf("expected ErrClosed; got %v", err)
	}
}

func TestRowSeed(t *testing.T) {
	seen := make(map[int64]bool)
	for row := uint32(0); row < 1000; row++ {
		seed := RowSeed(42, row)
		if seen[seed] {
			t.Fatalf("expected unique seed for row %d", row)
		}
		seen[seed] = true
	}

	if RowSeed(1, 0) == RowSeed(2, 0) {
		t.Fatal("expected different frame seeds to produce different row seeds")
	}
}

func TestAbortedBlock(t *testing.T) {
	const frameW, frameH = 8, 4
	tr := NewTracer("test")
	defer tr.Close()

	frameBuffer := make([]uint8, frameW*frameH*4)
	if err := tr.Setup(frameW, frameH, frameBuffer); err != nil {
		t.Fatal(err)
	}
	tr.AppendChange(tracer.SetScene, testScene())

	abortChan := make(chan struct{})
	close(abortChan)
	errChan := make(chan error, 1)
	tr.Enqueue(tracer.BlockRequest{
		BlockH:          frameH,
		SamplesPerPixel: 4,
		MaxDepth:        10,
		DoneChan:        make(chan uint32, 1),
		ErrChan:         errChan,
		AbortChan:       abortChan,
	})
	if err := <-errChan; err != tracer.ErrAborted {
		t.Fatalf("expected ErrAborted; got %v", err)
	}
	if !bytes.Equal(frameBuffer, make([]uint8, len(frameBuffer))) {
		t.Fatal("expected aborted block to leave the frame buffer untouched")
	}

	// The worker is idle again and accepts new requests
	if err := renderRows(t, tr, 0, frameH); err != nil {
		t.Fatal(err)
	}
}

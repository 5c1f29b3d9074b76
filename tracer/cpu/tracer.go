package cpu

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/achilleasa/go-raytrace/log"
	"github.com/achilleasa/go-raytrace/scene"
	"github.com/achilleasa/go-raytrace/tracer"
	"github.com/achilleasa/go-raytrace/tracer/integrator"
)

var (
	ErrBusy   = errors.New("cpu tracer: worker did not receive block request")
	ErrClosed = errors.New("cpu tracer: tracer is closed")
)

type cpuTracer struct {
	logger log.Logger

	sync.Mutex
	wg sync.WaitGroup

	// The tracer id.
	id string

	// A buffer for queuing updates. Updates are grouped by type and
	// latest updates always overwrite the previous ones.
	updateBuffer map[tracer.ChangeType]interface{}

	// A channel for receiving block requests from the renderer.
	blockReqChan chan tracer.BlockRequest

	// A channel for signaling the worker to exit.
	closeChan chan struct{}

	// Statistics for last rendered frame.
	stats *tracer.Stats

	// Frame dims and the RGBA output buffer shared with the renderer.
	// Tracers write disjoint rows so no locking is needed.
	frameW, frameH uint32
	frameBuffer    []uint8

	sceneData  *scene.Scene
	camera     *scene.Camera
	integrator *integrator.Integrator
}

// Create a new cpu tracer and start its worker.
func NewTracer(id string) tracer.Tracer {
	tr := &cpuTracer{
		logger:       log.New(fmt.Sprintf("cpu tracer (%s)", id)),
		id:           id,
		updateBuffer: make(map[tracer.ChangeType]interface{}),
		blockReqChan: make(chan tracer.BlockRequest, 1),
		stats:        &tracer.Stats{},
	}
	tr.startWorker()
	return tr
}

// Get tracer id.
func (tr *cpuTracer) Id() string {
	return tr.id
}

// Every cpu tracer runs on a single goroutine.
func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

// Attach the output frame buffer.
func (tr *cpuTracer) Setup(frameW, frameH uint32, frameBuffer []uint8) error {
	if frameW == 0 || frameH == 0 {
		return fmt.Errorf("cpu tracer: invalid frame dimensions %dx%d", frameW, frameH)
	}
	if uint32(len(frameBuffer)) != frameW*frameH*4 {
		return fmt.Errorf("cpu tracer: frame buffer has %d bytes; expected %d", len(frameBuffer), frameW*frameH*4)
	}

	tr.Lock()
	defer tr.Unlock()
	tr.frameW, tr.frameH = frameW, frameH
	tr.frameBuffer = frameBuffer
	return nil
}

// Shutdown the worker. Pending requests are discarded.
func (tr *cpuTracer) Close() {
	tr.Lock()
	closeChan := tr.closeChan
	tr.closeChan = nil
	tr.Unlock()

	if closeChan == nil {
		return
	}
	close(closeChan)
	tr.wg.Wait()
}

// Enqueue block request.
func (tr *cpuTracer) Enqueue(blockReq tracer.BlockRequest) {
	tr.Lock()
	closed := tr.closeChan == nil
	tr.Unlock()
	if closed {
		blockReq.ErrChan <- ErrClosed
		return
	}

	select {
	case tr.blockReqChan <- blockReq:
	default:
		// drop the request if worker is not listening
		tr.logger.Error("request processor did not receive block request")
		blockReq.ErrChan <- ErrBusy
	}
}

// Append a change to the tracer's update buffer.
func (tr *cpuTracer) AppendChange(changeType tracer.ChangeType, data interface{}) {
	tr.Lock()
	defer tr.Unlock()
	tr.updateBuffer[changeType] = data
}

// Apply all pending changes from the update buffer.
func (tr *cpuTracer) ApplyPendingChanges() error {
	tr.Lock()
	defer tr.Unlock()

	for changeType, data := range tr.updateBuffer {
		switch changeType {
		case tracer.SetScene:
			sc, ok := data.(*scene.Scene)
			if !ok || sc == nil {
				return tracer.ErrNoSceneData
			}
			tr.sceneData = sc
			tr.camera = sc.Camera
			tr.integrator = integrator.ForScene(sc)
		case tracer.UpdateCamera:
			camera, ok := data.(*scene.Camera)
			if !ok || camera == nil {
				return tracer.ErrNoCamera
			}
			tr.camera = camera
		default:
			return fmt.Errorf("cpu tracer: unsupported change type %d", changeType)
		}
	}

	tr.updateBuffer = make(map[tracer.ChangeType]interface{})
	return nil
}

// Retrieve last frame statistics.
func (tr *cpuTracer) Stats() *tracer.Stats {
	return tr.stats
}

// Spawn a go-routine to process block render requests.
func (tr *cpuTracer) startWorker() {
	tr.closeChan = make(chan struct{})
	closeChan := tr.closeChan

	readyChan := make(chan struct{})
	tr.wg.Add(1)
	go func() {
		defer tr.wg.Done()
		close(readyChan)
		tr.logger.Debug("worker started")
		for {
			select {
			case blockReq := <-tr.blockReqChan:
				tr.process(&blockReq)
			case <-closeChan:
				tr.logger.Debug("worker stopped")
				return
			}
		}
	}()

	// Wait for go-routine to start
	<-readyChan
}

// Apply pending changes, render the block and reply with our completion status.
func (tr *cpuTracer) process(blockReq *tracer.BlockRequest) {
	startTime := time.Now()
	tr.Lock()
	pending := len(tr.updateBuffer)
	tr.Unlock()
	if pending != 0 {
		if err := tr.ApplyPendingChanges(); err != nil {
			blockReq.ErrChan <- err
			return
		}
		tr.stats.UpdateTime = time.Since(startTime)
	}

	startTime = time.Now()
	if err := tr.renderBlock(blockReq); err != nil {
		blockReq.ErrChan <- err
		return
	}

	tr.stats.BlockH = blockReq.BlockH
	tr.stats.RenderTime = time.Since(startTime)
	tr.logger.Infof("rendered rows [%d, %d) in %s", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, tr.stats.RenderTime)
	blockReq.DoneChan <- blockReq.BlockH
}

// Render block.
func (tr *cpuTracer) renderBlock(blockReq *tracer.BlockRequest) error {
	tr.Lock()
	sc, camera, in := tr.sceneData, tr.camera, tr.integrator
	frameW, frameH, frameBuffer := tr.frameW, tr.frameH, tr.frameBuffer
	closeChan := tr.closeChan
	tr.Unlock()

	if closeChan == nil {
		return ErrClosed
	}
	if sc == nil || sc.Root == nil || in == nil {
		return tracer.ErrNoSceneData
	}
	if camera == nil {
		return tracer.ErrNoCamera
	}
	if frameBuffer == nil {
		return tracer.ErrNotSetUp
	}
	if blockReq.BlockY+blockReq.BlockH > frameH {
		return fmt.Errorf("cpu tracer: block rows [%d, %d) exceed frame height %d", blockReq.BlockY, blockReq.BlockY+blockReq.BlockH, frameH)
	}

	blockIn := *in
	if blockReq.Epsilon > 0 {
		blockIn.Epsilon = blockReq.Epsilon
	}

	for y := blockReq.BlockY; y < blockReq.BlockY+blockReq.BlockH; y++ {
		// Abort early if the tracer is shutting down or the requester
		// gave up on the block
		select {
		case <-closeChan:
			return ErrClosed
		case <-blockReq.AbortChan:
			return tracer.ErrAborted
		default:
		}

		rng := rand.New(rand.NewSource(RowSeed(blockReq.Seed, y)))
		offset := y * frameW * 4
		for x := uint32(0); x < frameW; x++ {
			r, g, b := blockIn.RenderPixel(camera, sc.Root, x, y, frameW, frameH, blockReq.SamplesPerPixel, blockReq.MaxDepth, rng)
			frameBuffer[offset] = r
			frameBuffer[offset+1] = g
			frameBuffer[offset+2] = b
			frameBuffer[offset+3] = 255
			offset += 4
		}
	}

	return nil
}

// Derive the random seed for a frame row.
func RowSeed(frameSeed int64, row uint32) int64 {
	return frameSeed*1000003 + int64(row)
}

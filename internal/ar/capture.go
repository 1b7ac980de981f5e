// Package ar runs the webcam feed and the ArUco marker overlay behind the
// AR view. The capture goroutine owns the device and every Mat it reads
// into; clones cross the package boundary and belong to the caller.
package ar

import (
	"sync"
	"time"

	"gocv.io/x/gocv"

	"classroom-planner/internal/logger"
)

// Capture owns the webcam on a background goroutine and keeps only the
// newest frame.
type Capture struct {
	device int
	log    *logger.Logger

	mu       sync.Mutex
	latest   gocv.Mat
	hasFrame bool
	running  bool
	stop     chan struct{}
	done     chan struct{}
}

// NewCapture prepares a feed for the numbered video device. Nothing opens
// until Start.
func NewCapture(device int, log *logger.Logger) *Capture {
	return &Capture{
		device: device,
		log:    log,
		latest: gocv.NewMat(),
	}
}

// Start opens the device and begins reading frames. Starting a running
// feed is a no-op.
func (c *Capture) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.stop = make(chan struct{})
	c.done = make(chan struct{})
	c.mu.Unlock()
	go c.loop(c.stop, c.done)
}

// Stop ends the feed and waits for the goroutine to release the device.
func (c *Capture) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	stop, done := c.stop, c.done
	c.mu.Unlock()

	close(stop)
	<-done

	c.mu.Lock()
	c.hasFrame = false
	c.mu.Unlock()
}

// Running reports whether the feed goroutine is alive.
func (c *Capture) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Frame returns a clone of the newest frame. ok is false until the first
// read lands; when ok, the caller closes the Mat.
func (c *Capture) Frame() (gocv.Mat, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hasFrame || c.latest.Empty() {
		return gocv.Mat{}, false
	}
	return c.latest.Clone(), true
}

func (c *Capture) loop(stop, done chan struct{}) {
	defer func() {
		c.mu.Lock()
		c.running = false
		c.hasFrame = false
		c.mu.Unlock()
		close(done)
	}()

	cam, err := gocv.OpenVideoCapture(c.device)
	if err != nil {
		c.log.Logf("open camera %d: %v", c.device, err)
		return
	}
	defer cam.Close()
	c.log.Log("camera feed started")

	frame := gocv.NewMat()
	defer frame.Close()
	for {
		select {
		case <-stop:
			c.log.Log("camera feed stopped")
			return
		default:
		}
		if !cam.Read(&frame) || frame.Empty() {
			c.log.Log("camera read failed")
			return
		}
		c.mu.Lock()
		frame.CopyTo(&c.latest)
		c.hasFrame = true
		c.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
}

package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/galaxy-gallery/core"
)

// FrameScheduler owns a single goroutine that calls tick at a fixed frame rate
// Work posted through Post or Do runs on the same goroutine between frames,
// so state touched only by tick and posted functions needs no locking
type FrameScheduler struct {
	clock    TimeProvider
	interval time.Duration
	maxDelta time.Duration
	tick     func(dt time.Duration)

	inbox  chan func()
	frames atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewFrameScheduler creates a scheduler; deltas passed to tick are capped at maxScale intervals
func NewFrameScheduler(clock TimeProvider, interval time.Duration, maxScale float64, inboxSize int, tick func(dt time.Duration)) *FrameScheduler {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	if maxScale < 1 {
		maxScale = 1
	}
	return &FrameScheduler{
		clock:    clock,
		interval: interval,
		maxDelta: time.Duration(float64(interval) * maxScale),
		tick:     tick,
		inbox:    make(chan func(), inboxSize),
		stopChan: make(chan struct{}),
	}
}

// Start begins the frame loop; no-op if already started or stopped
func (fs *FrameScheduler) Start() {
	select {
	case <-fs.stopChan:
		return
	default:
	}
	if fs.running.CompareAndSwap(false, true) {
		fs.wg.Add(1)
		core.Go(fs.loop)
	}
}

// Stop halts the frame loop and waits for it to exit; safe to call repeatedly
func (fs *FrameScheduler) Stop() {
	fs.stopOnce.Do(func() {
		close(fs.stopChan)
	})
	fs.wg.Wait()
	fs.running.Store(false)
}

// Running reports whether the loop goroutine is alive
func (fs *FrameScheduler) Running() bool {
	return fs.running.Load()
}

// Frames returns the number of completed ticks
func (fs *FrameScheduler) Frames() uint64 {
	return fs.frames.Load()
}

// Post queues fn to run on the loop goroutine without blocking
// Returns false if the inbox is full or the scheduler is stopped
func (fs *FrameScheduler) Post(fn func()) bool {
	select {
	case <-fs.stopChan:
		return false
	default:
	}
	select {
	case fs.inbox <- fn:
		return true
	default:
		return false
	}
}

// Do runs fn on the loop goroutine and waits for it to finish
// Returns false if the loop is not running or stops first
func (fs *FrameScheduler) Do(fn func()) bool {
	if !fs.running.Load() {
		return false
	}
	done := make(chan struct{})
	wrapped := func() {
		fn()
		close(done)
	}

	select {
	case fs.inbox <- wrapped:
	case <-fs.stopChan:
		return false
	}

	select {
	case <-done:
		return true
	case <-fs.stopChan:
		return false
	}
}

// loop runs ticks on deadlines, resyncing when it falls more than two frames behind
func (fs *FrameScheduler) loop() {
	defer fs.wg.Done()

	timer := time.NewTimer(0)
	defer timer.Stop()

	last := fs.clock.Now()
	next := last

	for {
		select {
		case <-fs.stopChan:
			return

		case fn := <-fs.inbox:
			fn()

		case <-timer.C:
			now := fs.clock.Now()
			dt := now.Sub(last)
			if dt <= 0 {
				dt = fs.interval
			}
			if dt > fs.maxDelta {
				dt = fs.maxDelta
			}
			last = now

			fs.tick(dt)
			fs.frames.Add(1)

			next = next.Add(fs.interval)
			if now.Sub(next) > fs.interval*2 {
				next = now.Add(fs.interval)
			}

			wait := next.Sub(fs.clock.Now())
			if wait < 0 {
				wait = 0
			}
			if wait > fs.interval {
				wait = fs.interval
			}
			timer.Reset(wait)
		}
	}
}

// FrameScale converts a tick duration into nominal frames of interval, capped
// at maxScale. A non-positive dt counts as one frame
func FrameScale(dt, interval time.Duration, maxScale float64) float64 {
	if dt <= 0 || interval <= 0 {
		return 1
	}
	k := float64(dt) / float64(interval)
	if k > maxScale {
		return maxScale
	}
	return k
}

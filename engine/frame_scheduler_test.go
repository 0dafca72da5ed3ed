package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestFrameSchedulerTicksAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	var ticks atomic.Int64
	fs := NewFrameScheduler(nil, time.Millisecond, 4, 8, func(dt time.Duration) {
		ticks.Add(1)
	})
	fs.Start()
	require.True(t, fs.Running())

	require.Eventually(t, func() bool { return ticks.Load() >= 5 }, time.Second, time.Millisecond)

	fs.Stop()
	assert.False(t, fs.Running())
	stopped := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "no ticks after Stop")
	assert.Equal(t, uint64(stopped), fs.Frames())

	// Idempotent
	fs.Stop()
}

func TestFrameSchedulerCapsDelta(t *testing.T) {
	defer goleak.VerifyNone(t)

	clock := NewMockTimeProvider(time.Unix(0, 0))
	interval := 10 * time.Millisecond
	deltas := make(chan time.Duration, 64)

	fs := NewFrameScheduler(clock, interval, 4, 8, func(dt time.Duration) {
		select {
		case deltas <- dt:
		default:
		}
	})
	fs.Start()
	defer fs.Stop()

	// Frozen clock reports the nominal interval
	assert.Equal(t, interval, <-deltas)

	require.True(t, fs.Do(func() { clock.Advance(time.Second) }))
	for dt := range deltas {
		if dt != interval {
			assert.Equal(t, 4*interval, dt)
			break
		}
	}
}

func TestFrameSchedulerPostRunsOnLoop(t *testing.T) {
	defer goleak.VerifyNone(t)

	var inTick atomic.Bool
	var overlap atomic.Bool
	fs := NewFrameScheduler(nil, time.Millisecond, 4, 64, func(time.Duration) {
		inTick.Store(true)
		time.Sleep(100 * time.Microsecond)
		inTick.Store(false)
	})
	fs.Start()

	var ran atomic.Int64
	for i := 0; i < 20; i++ {
		fs.Post(func() {
			if inTick.Load() {
				overlap.Store(true)
			}
			ran.Add(1)
		})
	}
	require.Eventually(t, func() bool { return ran.Load() == 20 }, time.Second, time.Millisecond)
	assert.False(t, overlap.Load())

	fs.Stop()
	assert.False(t, fs.Post(func() {}))
	assert.False(t, fs.Do(func() {}))
}

func TestFrameSchedulerStopBeforeStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	fs := NewFrameScheduler(nil, time.Millisecond, 1, 1, func(time.Duration) {})
	fs.Stop()
	fs.Start()
	assert.False(t, fs.Running())
}

func TestFrameScale(t *testing.T) {
	interval := 10 * time.Millisecond
	assert.Equal(t, 1.0, FrameScale(0, interval, 4))
	assert.Equal(t, 1.0, FrameScale(interval, interval, 4))
	assert.Equal(t, 0.5, FrameScale(5*time.Millisecond, interval, 4))
	assert.Equal(t, 4.0, FrameScale(time.Second, interval, 4))
	assert.Equal(t, 1.0, FrameScale(interval, 0, 4))
}

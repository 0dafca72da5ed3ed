package audio

import (
	"slices"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/galaxy-gallery/constants"
)

// speakerBackend abstracts the process-wide beep speaker so tests can run without a device
type speakerBackend interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
	Clear()
}

type beepSpeaker struct{}

func (beepSpeaker) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (beepSpeaker) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (beepSpeaker) Lock()                   { speaker.Lock() }
func (beepSpeaker) Unlock()                 { speaker.Unlock() }
func (beepSpeaker) Clear()                  { speaker.Clear() }

// SoundManager owns the speaker and a mixer of fire-and-forget cues
type SoundManager struct {
	mu        sync.Mutex
	config    *AudioConfig
	backend   speakerBackend
	mixer     *beep.Mixer
	logger    *zap.Logger
	activated bool // activation attempted, successful or not
	running   bool
	pending   []pendingStop
}

// pendingStop pairs a noise layer with the timer scheduled to end it
type pendingStop struct {
	timer *time.Timer
	sweep *stopper
}

// NewSoundManager creates a sound manager; the speaker is not touched until Activate
func NewSoundManager(cfg *AudioConfig, logger *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SoundManager{
		config:  cfg,
		backend: beepSpeaker{},
		mixer:   &beep.Mixer{},
		logger:  logger,
	}
}

// Running reports whether cues will be audible
func (sm *SoundManager) Running() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.running
}

// Activate initializes the speaker once. Later calls return immediately,
// so a failed device stays silent instead of retrying every cue
func (sm *SoundManager) Activate() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.activated {
		return nil
	}
	sm.activated = true

	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := sm.backend.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		sm.logger.Warn("audio activation failed, continuing without sound", zap.Error(err))
		return err
	}

	sm.backend.Play(sm.mixer)
	sm.running = true
	sm.logger.Debug("audio activated", zap.Int("sample_rate", sm.config.SampleRate))
	return nil
}

// Trigger fires the supernova cue: a membrane hit plus a filtered noise sweep
// whose stop is scheduled on a timer. Silently does nothing when not running
func (sm *SoundManager) Trigger() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.running {
		return
	}

	hit := CreateMembraneHit(sm.config)
	sweep := newStopper(CreateNoiseSweep(sm.config))

	sm.backend.Lock()
	sm.mixer.Add(hit, sweep)
	sm.backend.Unlock()

	timer := time.AfterFunc(constants.NoiseSweepDuration, sweep.Stop)
	sm.pending = slices.DeleteFunc(sm.pending, func(p pendingStop) bool {
		return p.sweep.stopped.Load()
	})
	sm.pending = append(sm.pending, pendingStop{timer: timer, sweep: sweep})
}

// Active returns the number of streamers currently in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.running {
		return sm.mixer.Len()
	}
	sm.backend.Lock()
	defer sm.backend.Unlock()
	return sm.mixer.Len()
}

// Cleanup stops all sounds and pending timers
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, p := range sm.pending {
		p.timer.Stop()
		p.sweep.Stop()
	}
	sm.pending = nil

	if !sm.running {
		return
	}

	sm.backend.Lock()
	sm.mixer.Clear()
	sm.backend.Unlock()
	sm.backend.Clear()
	sm.running = false
}

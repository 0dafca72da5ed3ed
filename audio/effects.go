package audio

import (
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/galaxy-gallery/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, gliding exponentially from startFreq to endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int // samples, <= 0 means unbounded
	position  int
	wave      WaveType
	rate      beep.SampleRate
	rng       *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlideOscillator(freq, freq, duration, wave, rate)
}

// NewGlideOscillator creates an oscillator whose pitch glides over the duration
func NewGlideOscillator(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewNoise creates an unbounded white noise source
func NewNoise(rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave: WaveNoise,
		rate: rate,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (o *oscillator) freqAt() float64 {
	if o.duration <= 0 || o.startFreq == o.endFreq || o.startFreq <= 0 || o.endFreq <= 0 {
		return o.startFreq
	}
	t := float64(o.position) / float64(o.duration)
	return o.startFreq * math.Pow(o.endFreq/o.startFreq, t)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.duration > 0 && o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freqAt() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = math.Max(0, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// lowPassSweep is a one-pole low-pass filter whose cutoff glides exponentially
// from startCutoff to endCutoff over the duration and then holds
type lowPassSweep struct {
	streamer    beep.Streamer
	rate        beep.SampleRate
	startCutoff float64
	endCutoff   float64
	duration    int
	position    int
	state       [2]float64
}

// NewLowPassSweep filters s with a falling (or rising) cutoff
func NewLowPassSweep(s beep.Streamer, startCutoff, endCutoff float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &lowPassSweep{
		streamer:    s,
		rate:        rate,
		startCutoff: startCutoff,
		endCutoff:   endCutoff,
		duration:    rate.N(duration),
	}
}

func (f *lowPassSweep) cutoff() float64 {
	if f.duration <= 0 || f.position >= f.duration {
		return f.endCutoff
	}
	t := float64(f.position) / float64(f.duration)
	return f.startCutoff * math.Pow(f.endCutoff/f.startCutoff, t)
}

func (f *lowPassSweep) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		alpha := 1 - math.Exp(-2*math.Pi*f.cutoff()/float64(f.rate))
		f.state[0] += alpha * (samples[i][0] - f.state[0])
		f.state[1] += alpha * (samples[i][1] - f.state[1])
		samples[i][0] = f.state[0]
		samples[i][1] = f.state[1]
		f.position++
	}
	return n, ok
}

func (f *lowPassSweep) Err() error { return f.streamer.Err() }

// stopper ends a stream once Stop is called, letting the mixer drop it
type stopper struct {
	streamer beep.Streamer
	stopped  atomic.Bool
}

func newStopper(s beep.Streamer) *stopper {
	return &stopper{streamer: s}
}

// Stop is safe to call from any goroutine
func (s *stopper) Stop() {
	s.stopped.Store(true)
}

func (s *stopper) Stream(samples [][2]float64) (n int, ok bool) {
	if s.stopped.Load() {
		return 0, false
	}
	return s.streamer.Stream(samples)
}

func (s *stopper) Err() error { return s.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateMembraneHit generates a pitched percussive hit with a falling pitch
func CreateMembraneHit(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewGlideOscillator(constants.MembraneStartFreq, constants.MembraneEndFreq, constants.MembraneSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.MembraneSoundDuration, constants.MembraneSoundAttack, constants.MembraneSoundRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundMembrane))
}

// CreateNoiseSweep generates unbounded noise through a falling low-pass filter
// The caller owns stopping it; the envelope fades it to silence by NoiseSweepDuration
func CreateNoiseSweep(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	filtered := NewLowPassSweep(NewNoise(rate), constants.NoiseSweepStartFreq, constants.NoiseSweepEndFreq, constants.NoiseSweepDuration, rate)
	shaped := NewEnvelope(filtered, constants.NoiseSweepDuration, constants.NoiseSweepAttack, constants.NoiseSweepRelease, rate)

	return newVolume(shaped, cfg.Volume(SoundNoiseSweep))
}

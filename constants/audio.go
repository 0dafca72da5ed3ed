package constants

import "time"

// Audio Engine Constants
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Supernova Sound Timing
const (
	// Membrane hit: pitched sine with falling frequency
	MembraneSoundDuration = 400 * time.Millisecond
	MembraneSoundAttack   = 2 * time.Millisecond
	MembraneSoundRelease  = 380 * time.Millisecond
	MembraneStartFreq     = 220.0
	MembraneEndFreq       = 55.0
	MembraneOctaves       = 2.0

	// Filtered noise sweep: cutoff falls from start to end over the duration
	NoiseSweepDuration  = 900 * time.Millisecond
	NoiseSweepAttack    = 10 * time.Millisecond
	NoiseSweepRelease   = 600 * time.Millisecond
	NoiseSweepStartFreq = 4000.0
	NoiseSweepEndFreq   = 200.0
)

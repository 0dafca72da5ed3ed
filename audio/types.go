package audio

import "errors"

// SoundType represents the layers of a sound cue
type SoundType int

const (
	SoundMembrane   SoundType = iota // Pitched percussive hit
	SoundNoiseSweep                  // Filtered noise sweep
	soundTypeCount
)

// String returns the config key of the sound type
func (s SoundType) String() string {
	switch s {
	case SoundMembrane:
		return "membrane"
	case SoundNoiseSweep:
		return "noise"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)

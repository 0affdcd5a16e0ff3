package config

import "time"

const (
	WindowWidth  = 1290
	WindowHeight = 720
	WindowTitle  = "Particle Sandbox - 1-4/Tab: style, arrows: tune, T: throttle, C: clear, Esc/Q: quit"

	// Tunable ranges
	MinDisappearSpeed     = 0.1
	MaxDisappearSpeed     = 0.7
	MinSpawnCount         = 1
	MaxSpawnCount         = 10
	MinStarThrottlePeriod = 1
	MaxStarThrottlePeriod = 10

	// Start-up values
	DefaultDisappearSpeed     = 0.2
	DefaultSpawnCount         = 1
	DefaultStarThrottlePeriod = 5

	// Panel steps
	DisappearSpeedStep = 0.05
	SpawnCountStep     = 1
	ThrottleStep       = 1

	// Status text position
	StatusX = 12
	StatusY = 12

	// Style cue
	SoundEnabled  = true
	CueSampleRate = 44100
	CueDuration   = 80 * time.Millisecond
	CueBuffer     = 50 * time.Millisecond
	CueVolume     = -1.5 // base-2 exponent
)

// CueFrequencies holds the blip pitch in Hz for each style, in style order.
var CueFrequencies = [4]float64{523.25, 659.25, 783.99, 1046.50}

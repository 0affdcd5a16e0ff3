package game

import (
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/particle-sandbox/internal/config"
	"github.com/iburimskiy/particle-sandbox/internal/particle"
	"github.com/iburimskiy/particle-sandbox/internal/sound"
)

// styleCue plays a short blip on the speaker whenever the style changes.
// A nil *styleCue is silent.
type styleCue struct {
	sampleRate beep.SampleRate
}

func newStyleCue() (*styleCue, error) {
	sr := beep.SampleRate(config.CueSampleRate)
	if err := speaker.Init(sr, sr.N(config.CueBuffer)); err != nil {
		return nil, err
	}
	return &styleCue{sampleRate: sr}, nil
}

func (c *styleCue) play(style particle.Style) {
	if c == nil || !style.Valid() {
		return
	}
	freq := config.CueFrequencies[style]
	speaker.Play(sound.Blip(c.sampleRate, freq, config.CueDuration, config.CueVolume))
}

func (c *styleCue) close() {
	if c == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

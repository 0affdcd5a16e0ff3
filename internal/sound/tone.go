// Package sound builds the short tones played when the style changes.
package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

// Blip returns a sine tone of the given pitch and length with a linear
// decay envelope, attenuated by volume (a base-2 exponent, 0 is unity).
// The streamer drains after exactly sr.N(d) samples.
func Blip(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	n := sr.N(d)
	pos := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			env := 1 - float64(pos)/float64(n)
			v := math.Sin(2*math.Pi*freq*float64(pos)/float64(sr)) * env
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	})
	return &effects.Volume{
		Streamer: beep.Take(n, tone),
		Base:     2,
		Volume:   volume,
	}
}

// Package panel is the control surface of the sandbox: it turns user actions
// into edits of particle.Settings and renders the status text.
package panel

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/particle-sandbox/internal/config"
	"github.com/iburimskiy/particle-sandbox/internal/particle"
)

// Action is a single user command.
type Action int

const (
	None Action = iota
	SelectRandom
	SelectTrailFade
	SelectTrailGrow
	SelectStars
	CycleStyle
	FasterFade
	SlowerFade
	MoreParticles
	FewerParticles
	ToggleThrottle
	LongerThrottle
	ShorterThrottle
	Clear
	Quit
)

// SpeedEnabled reports whether the disappearing speed can be edited.
func SpeedEnabled(s particle.Settings) bool {
	return s.Style != particle.StyleStars
}

// CountEnabled reports whether the spawn count can be edited. Trail styles
// always spawn a single particle.
func CountEnabled(s particle.Settings) bool {
	return s.Style != particle.StyleTrailFade && s.Style != particle.StyleTrailGrow
}

func ThrottleEnabled(s particle.Settings) bool {
	return s.Style == particle.StyleStars
}

func PeriodEnabled(s particle.Settings) bool {
	return ThrottleEnabled(s) && s.ThrottleEnabled
}

// Apply returns s edited by a. Edits the panel disables for the current style
// are ignored, and every tunable stays within its range.
func Apply(s particle.Settings, a Action) particle.Settings {
	switch a {
	case SelectRandom:
		s.Style = particle.StyleRandom
	case SelectTrailFade:
		s.Style = particle.StyleTrailFade
	case SelectTrailGrow:
		s.Style = particle.StyleTrailGrow
	case SelectStars:
		s.Style = particle.StyleStars
	case CycleStyle:
		s.Style = s.Style.Next()
	case FasterFade, SlowerFade:
		if !SpeedEnabled(s) {
			return s
		}
		step := float32(config.DisappearSpeedStep)
		if a == SlowerFade {
			step = -step
		}
		s.DisappearSpeed += step
	case MoreParticles, FewerParticles:
		if !CountEnabled(s) {
			return s
		}
		if a == MoreParticles {
			s.SpawnCount += config.SpawnCountStep
		} else {
			s.SpawnCount -= config.SpawnCountStep
		}
	case ToggleThrottle:
		if ThrottleEnabled(s) {
			s.ThrottleEnabled = !s.ThrottleEnabled
		}
	case LongerThrottle, ShorterThrottle:
		if !PeriodEnabled(s) {
			return s
		}
		if a == LongerThrottle {
			s.StarThrottlePeriod += config.ThrottleStep
		} else {
			s.StarThrottlePeriod -= config.ThrottleStep
		}
	}
	return s.Clamped()
}

// Status renders the panel text for the current settings.
func Status(s particle.Settings, particles int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Style: %s [1-4, Tab]\n", s.Style)
	fmt.Fprintf(&b, "Disappearing speed: %s [Up/Down]\n", field(SpeedEnabled(s), fmt.Sprintf("%.2f", s.DisappearSpeed)))
	fmt.Fprintf(&b, "Spawn count: %s [Left/Right]\n", field(CountEnabled(s), fmt.Sprint(s.SpawnCount)))
	fmt.Fprintf(&b, "Throttle star spawn rate: %s [T]\n", field(ThrottleEnabled(s), onOff(s.ThrottleEnabled)))
	fmt.Fprintf(&b, "Throttle amount: %s [ [ / ] ]\n", field(PeriodEnabled(s), fmt.Sprint(s.StarThrottlePeriod)))
	fmt.Fprintf(&b, "# of particles: %d\n", particles)
	b.WriteString("C: clear  Esc/Q: quit")
	return b.String()
}

func field(enabled bool, v string) string {
	if !enabled {
		return "-"
	}
	return v
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

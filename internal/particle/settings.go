package particle

import "github.com/iburimskiy/particle-sandbox/internal/config"

// Settings holds the style selection and tunables read by the engine each
// frame. The control surface owns it and edits it between frames.
type Settings struct {
	Style              Style
	DisappearSpeed     float32
	SpawnCount         int
	StarThrottlePeriod int
	ThrottleEnabled    bool
}

// DefaultSettings returns the start-up configuration.
func DefaultSettings() Settings {
	return Settings{
		Style:              StyleRandom,
		DisappearSpeed:     config.DefaultDisappearSpeed,
		SpawnCount:         config.DefaultSpawnCount,
		StarThrottlePeriod: config.DefaultStarThrottlePeriod,
	}
}

// Clamped returns a copy of s with every tunable pinned to its range and an
// unknown style replaced by Random.
func (s Settings) Clamped() Settings {
	if !s.Style.Valid() {
		s.Style = StyleRandom
	}
	s.DisappearSpeed = clamp(s.DisappearSpeed, config.MinDisappearSpeed, config.MaxDisappearSpeed)
	s.SpawnCount = clampInt(s.SpawnCount, config.MinSpawnCount, config.MaxSpawnCount)
	s.StarThrottlePeriod = clampInt(s.StarThrottlePeriod, config.MinStarThrottlePeriod, config.MaxStarThrottlePeriod)
	return s
}

// spawnCount is the number of particles spawned per movement event when the
// star throttle is not in play. It is one more than SpawnCount, and trail
// styles always use a nominal count of one.
func (s Settings) spawnCount() int {
	n := s.SpawnCount
	if s.Style.trail() {
		n = 1
	}
	return n + 1
}

func (s Settings) throttled() bool {
	return s.Style == StyleStars && s.ThrottleEnabled
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

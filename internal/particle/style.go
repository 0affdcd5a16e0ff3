package particle

import (
	"math/rand/v2"

	"golang.org/x/image/colornames"
)

// Style selects the spawn, update and removal rules applied each frame.
type Style int

const (
	StyleRandom Style = iota
	StyleTrailFade
	StyleTrailGrow
	StyleStars

	styleCount
)

var styleNames = [styleCount]string{
	StyleRandom:    "Random",
	StyleTrailFade: "Vanishing trail",
	StyleTrailGrow: "Exploding trail",
	StyleStars:     "Stars",
}

func (s Style) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return styleNames[s]
}

func (s Style) Valid() bool { return s >= 0 && s < styleCount }

// Next returns the following style, wrapping around after Stars.
func (s Style) Next() Style {
	if !s.Valid() {
		return StyleRandom
	}
	return (s + 1) % styleCount
}

// Styles lists every style in selection order.
func Styles() []Style {
	return []Style{StyleRandom, StyleTrailFade, StyleTrailGrow, StyleStars}
}

// trail reports whether the style spawns a single particle per movement.
func (s Style) trail() bool {
	return s == StyleTrailFade || s == StyleTrailGrow
}

const (
	// Fade factors applied to alpha every frame
	fadeSlow = 0.99
	fadeFast = 0.97

	minRadius = 1
	minAlpha  = 0.01

	randomMinSpeed  = 1
	randomMaxSpeed  = 200
	randomMinRadius = 5
	randomMaxRadius = 25
	randomMinAlpha  = 128

	trailFadeRadius = 30
	trailGrowRadius = 5

	starScatter      = 100
	starMinSpeed     = 1
	starMaxSpeed     = 50
	starRadius       = 5
	starLifetime     = 7
	starFadeInAbove  = 5.5
	starFadeOutBelow = 5.0
	starFadeInStep   = 0.01
	starFadeOutStep  = 0.005
	starMaxAlpha     = 0.5

	// Lifetime placeholder for styles that never read TimeRemaining
	unusedLifetime = 1

	directionAttempts = 8
	directionEpsilon  = 1e-6
)

var (
	trailFadeColor = FromColor(colornames.Magenta)
	trailGrowColor = FromColor(colornames.Orange)
	starColor      = Color{R: 1, G: 1, B: 1, A: 1.0 / 255}
)

// policy bundles the per-style rules. Every rule is a pure function of its
// arguments; the engine picks one policy per phase from the current style.
type policy struct {
	spawn   func(rng *rand.Rand, pointer Vec2) Particle
	update  func(p *Particle, dt float32, s Settings)
	expired func(p Particle) bool
}

var policies = [styleCount]policy{
	StyleRandom: {
		spawn: func(rng *rand.Rand, pointer Vec2) Particle {
			velocity := randomDirection(rng).Scale(uniform(rng, randomMinSpeed, randomMaxSpeed))
			c := RGBA8(
				uint8(rng.IntN(256)),
				uint8(rng.IntN(256)),
				uint8(rng.IntN(256)),
				uint8(randomMinAlpha+rng.IntN(256-randomMinAlpha)),
			)
			return Particle{
				Position:      pointer,
				Velocity:      velocity,
				Color:         c,
				Radius:        uniform(rng, randomMinRadius, randomMaxRadius),
				TimeRemaining: unusedLifetime,
			}
		},
		update: func(p *Particle, dt float32, s Settings) {
			p.Position = p.Position.Add(p.Velocity.Scale(dt))
			p.Radius -= s.DisappearSpeed
			p.Color.A *= fadeSlow
		},
		expired: smallerThanMin,
	},
	StyleTrailFade: {
		spawn: func(_ *rand.Rand, pointer Vec2) Particle {
			return Particle{
				Position:      pointer,
				Color:         trailFadeColor,
				Radius:        trailFadeRadius,
				TimeRemaining: unusedLifetime,
			}
		},
		update: func(p *Particle, _ float32, s Settings) {
			p.Radius -= s.DisappearSpeed
			p.Color.A *= fadeSlow
		},
		expired: smallerThanMin,
	},
	StyleTrailGrow: {
		spawn: func(_ *rand.Rand, pointer Vec2) Particle {
			return Particle{
				Position:      pointer,
				Color:         trailGrowColor,
				Radius:        trailGrowRadius,
				TimeRemaining: unusedLifetime,
			}
		},
		update: func(p *Particle, _ float32, s Settings) {
			p.Radius += s.DisappearSpeed
			p.Color.A *= fadeFast
		},
		expired: func(p Particle) bool { return p.Color.A <= minAlpha },
	},
	StyleStars: {
		spawn: func(rng *rand.Rand, pointer Vec2) Particle {
			offset := Vec2{uniform(rng, -starScatter, starScatter), uniform(rng, -starScatter, starScatter)}
			return Particle{
				Position:      pointer.Add(offset),
				Velocity:      randomDirection(rng).Scale(uniform(rng, starMinSpeed, starMaxSpeed)),
				Color:         starColor,
				Radius:        starRadius,
				TimeRemaining: starLifetime,
			}
		},
		update: func(p *Particle, dt float32, _ Settings) {
			p.Position = p.Position.Add(p.Velocity.Scale(dt))
			p.TimeRemaining -= dt
			// Fade in, clamp, then fade out; both may apply on one frame.
			if p.TimeRemaining > starFadeInAbove {
				p.Color.A += starFadeInStep
			}
			p.Color.A = clamp(p.Color.A, 0, starMaxAlpha)
			if p.TimeRemaining < starFadeOutBelow {
				p.Color.A -= starFadeOutStep
			}
		},
		expired: func(p Particle) bool { return p.TimeRemaining <= 0 },
	},
}

func (s Style) policy() policy {
	if !s.Valid() {
		return policies[StyleRandom]
	}
	return policies[s]
}

func smallerThanMin(p Particle) bool { return p.Radius <= minRadius }

func uniform(rng *rand.Rand, lo, hi float32) float32 {
	return lo + rng.Float32()*(hi-lo)
}

// randomDirection returns a unit vector from two uniform samples in [-1,1].
// Degenerate samples are redrawn and fall back to +X.
func randomDirection(rng *rand.Rand) Vec2 {
	for range directionAttempts {
		v := Vec2{uniform(rng, -1, 1), uniform(rng, -1, 1)}
		if v.Len() > directionEpsilon {
			return v.Normalize()
		}
	}
	return Vec2{X: 1}
}

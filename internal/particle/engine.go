package particle

import (
	"math/rand/v2"

	"github.com/iburimskiy/particle-sandbox/internal/config"
)

// Engine owns the live particles and advances them one frame at a time.
// It is not safe for concurrent use; the driver calls it once per tick.
type Engine struct {
	particles []Particle
	throttle  int
	rng       *rand.Rand
	draws     []DrawCommand
}

// NewEngine returns an empty engine. A nil rng is replaced by a
// runtime-seeded generator.
func NewEngine(rng *rand.Rand) *Engine {
	e := &Engine{throttle: config.DefaultStarThrottlePeriod}
	e.SetRand(rng)
	return e
}

// SetRand replaces the random source used by spawn rules.
func (e *Engine) SetRand(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.rng = rng
}

// Advance runs one frame: spawn, removal, update and emit. Spawning only
// happens when movement is positive. Removal and update follow the current
// style for every particle, whichever style it was spawned under.
//
// The returned slice is reused by the next call.
func (e *Engine) Advance(dt float32, pointer Vec2, movement float32, s *Settings) []DrawCommand {
	cfg := DefaultSettings()
	if s != nil {
		cfg = s.Clamped()
	}
	pol := cfg.Style.policy()

	if movement > 0 {
		e.spawn(pol, pointer, cfg)
	}
	e.removeExpired(pol)

	for i := range e.particles {
		pol.update(&e.particles[i], dt, cfg)
	}

	e.draws = e.draws[:0]
	for _, p := range e.particles {
		e.draws = append(e.draws, DrawCommand{
			Position: p.Position,
			Radius:   max(p.Radius, 0),
			Color:    p.Color.clamped(),
		})
	}
	return e.draws
}

func (e *Engine) spawn(pol policy, pointer Vec2, s Settings) {
	if s.throttled() {
		e.throttle--
		if e.throttle <= 0 {
			e.particles = append(e.particles, pol.spawn(e.rng, pointer))
			e.throttle = s.StarThrottlePeriod
		}
		return
	}
	for range s.spawnCount() {
		e.particles = append(e.particles, pol.spawn(e.rng, pointer))
	}
}

// removeExpired compacts the live slice in place, keeping order.
func (e *Engine) removeExpired(pol policy) {
	kept := e.particles[:0]
	for _, p := range e.particles {
		if !pol.expired(p) {
			kept = append(kept, p)
		}
	}
	clear(e.particles[len(kept):])
	e.particles = kept
}

// Len returns the number of live particles.
func (e *Engine) Len() int { return len(e.particles) }

// Particles returns a copy of the live particles in draw order.
func (e *Engine) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}

// Reset drops every particle and re-arms the star throttle.
func (e *Engine) Reset() {
	clear(e.particles)
	e.particles = e.particles[:0]
	e.throttle = config.DefaultStarThrottlePeriod
}

package game

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-sandbox/internal/panel"
	"github.com/iburimskiy/particle-sandbox/internal/particle"
)

const tick = float32(1.0 / 60.0)

func newTestSandbox() *Sandbox {
	return &Sandbox{
		engine:   particle.NewEngine(rand.New(rand.NewPCG(11, 12))),
		settings: particle.DefaultSettings(),
	}
}

func TestStepFirstTickHasNoMovement(t *testing.T) {
	g := newTestSandbox()
	if err := g.step(particle.Vec2{X: 400, Y: 300}, nil, tick); err != nil {
		t.Fatalf("step: %v", err)
	}
	if g.engine.Len() != 0 {
		t.Fatalf("particles = %d on first tick, want 0", g.engine.Len())
	}
}

func TestStepSpawnsOnPointerMovement(t *testing.T) {
	g := newTestSandbox()
	_ = g.step(particle.Vec2{X: 400, Y: 300}, nil, tick)
	_ = g.step(particle.Vec2{X: 400, Y: 300}, nil, tick)
	if g.engine.Len() != 0 {
		t.Fatalf("particles = %d with a still pointer, want 0", g.engine.Len())
	}
	_ = g.step(particle.Vec2{X: 405, Y: 300}, nil, tick)
	if g.engine.Len() != 2 {
		t.Fatalf("particles = %d after moving, want 2", g.engine.Len())
	}
	if len(g.draws) != 2 {
		t.Fatalf("draws = %d, want 2", len(g.draws))
	}
}

func TestStepAppliesActions(t *testing.T) {
	g := newTestSandbox()
	_ = g.step(particle.Vec2{}, []panel.Action{panel.SelectStars, panel.ToggleThrottle, panel.ShorterThrottle}, tick)
	want := particle.Settings{
		Style:              particle.StyleStars,
		DisappearSpeed:     0.2,
		SpawnCount:         1,
		StarThrottlePeriod: 4,
		ThrottleEnabled:    true,
	}
	if g.settings != want {
		t.Fatalf("settings = %+v, want %+v", g.settings, want)
	}
}

func TestStepClearAndQuit(t *testing.T) {
	g := newTestSandbox()
	_ = g.step(particle.Vec2{}, nil, tick)
	_ = g.step(particle.Vec2{X: 10, Y: 10}, nil, tick)
	if g.engine.Len() == 0 {
		t.Fatal("no particles spawned")
	}
	_ = g.step(particle.Vec2{X: 10, Y: 10}, []panel.Action{panel.Clear}, tick)
	if g.engine.Len() != 0 {
		t.Fatalf("particles = %d after clear, want 0", g.engine.Len())
	}
	if err := g.step(particle.Vec2{}, []panel.Action{panel.Quit}, tick); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("quit returned %v, want ebiten.Termination", err)
	}
}

func TestLayoutIsFixed(t *testing.T) {
	g := newTestSandbox()
	w, h := g.Layout(100, 100)
	if w != 1290 || h != 720 {
		t.Fatalf("Layout = %dx%d, want 1290x720", w, h)
	}
}

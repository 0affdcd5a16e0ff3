package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-sandbox/internal/config"
	"github.com/iburimskiy/particle-sandbox/internal/panel"
	"github.com/iburimskiy/particle-sandbox/internal/particle"
)

// Sandbox drives the particle engine from ebiten's game loop.
type Sandbox struct {
	engine   *particle.Engine
	settings particle.Settings
	draws    []particle.DrawCommand

	// pointer tracking
	pointer     particle.Vec2
	seenPointer bool

	cue *styleCue
}

func NewSandbox() *Sandbox {
	g := &Sandbox{
		engine:   particle.NewEngine(nil),
		settings: particle.DefaultSettings(),
	}
	if config.SoundEnabled {
		cue, err := newStyleCue()
		if err != nil {
			log.Printf("style cues disabled: %v", err)
		}
		g.cue = cue
	}
	return g
}

func (g *Sandbox) Update() error {
	x, y := cursor()
	dt := float32(1 / float64(ebiten.TPS()))
	return g.step(particle.Vec2{X: x, Y: y}, pressedActions(), dt)
}

// step applies the tick's actions and advances the engine once. Movement is
// the distance the pointer travelled since the previous tick.
func (g *Sandbox) step(pointer particle.Vec2, actions []panel.Action, dt float32) error {
	for _, a := range actions {
		switch a {
		case panel.Quit:
			g.cue.close()
			return ebiten.Termination
		case panel.Clear:
			g.engine.Reset()
		default:
			prev := g.settings.Style
			g.settings = panel.Apply(g.settings, a)
			if g.settings.Style != prev {
				g.cue.play(g.settings.Style)
			}
		}
	}

	var movement float32
	if g.seenPointer {
		movement = pointer.Add(g.pointer.Scale(-1)).Len()
	}
	g.pointer, g.seenPointer = pointer, true

	g.draws = g.engine.Advance(dt, pointer, movement, &g.settings)
	return nil
}

func (g *Sandbox) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, d := range g.draws {
		vector.DrawFilledCircle(screen, d.Position.X, d.Position.Y, d.Radius, d.Color.NRGBA(), true)
	}
	ebitenutil.DebugPrintAt(screen, panel.Status(g.settings, g.engine.Len()), config.StatusX, config.StatusY)
}

func (g *Sandbox) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-sandbox/internal/panel"
)

var keyBindings = []struct {
	key    ebiten.Key
	action panel.Action
}{
	{ebiten.KeyDigit1, panel.SelectRandom},
	{ebiten.KeyDigit2, panel.SelectTrailFade},
	{ebiten.KeyDigit3, panel.SelectTrailGrow},
	{ebiten.KeyDigit4, panel.SelectStars},
	{ebiten.KeyTab, panel.CycleStyle},
	{ebiten.KeyArrowUp, panel.FasterFade},
	{ebiten.KeyArrowDown, panel.SlowerFade},
	{ebiten.KeyArrowRight, panel.MoreParticles},
	{ebiten.KeyArrowLeft, panel.FewerParticles},
	{ebiten.KeyT, panel.ToggleThrottle},
	{ebiten.KeyBracketRight, panel.LongerThrottle},
	{ebiten.KeyBracketLeft, panel.ShorterThrottle},
	{ebiten.KeyC, panel.Clear},
	{ebiten.KeyEscape, panel.Quit},
	{ebiten.KeyQ, panel.Quit},
}

// pressedActions returns the actions whose keys went down this tick.
func pressedActions() []panel.Action {
	var actions []panel.Action
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

func cursor() (float32, float32) {
	x, y := ebiten.CursorPosition()
	return float32(x), float32(y)
}

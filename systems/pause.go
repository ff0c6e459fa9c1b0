package systems

import (
	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause renders the pause overlay on top of the frozen arena.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateGame(ecs).State != cfg.StatePaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	titleFont := fonts.Title.Get()
	text.Draw(screen, cfg.Pause.Title, titleFont, centerTextX(cfg.Pause.Title, titleFont, width), int(height/2), cfg.Pause.TextColor)

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height/2)+40, cfg.Pause.TextColor)
}

// getPauseHint returns the resume prompt for the last used input device
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Options to resume"
	case components.InputXbox:
		return "Press Start to resume"
	}
	return cfg.Pause.Hint
}

package systems

import (
	"fmt"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	game := GetOrCreateGame(e)
	if game.State != cfg.StateMenu {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	text.Draw(screen, cfg.Menu.Title, titleFont, centerTextX(cfg.Menu.Title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	helpFont := fonts.Regular.Get()
	for i, line := range cfg.Menu.HelpLines {
		y := cfg.Menu.HelpStartY + float64(i)*cfg.Menu.HelpLineHeight
		text.Draw(screen, line, helpFont, centerTextX(line, helpFont, width), int(y), cfg.Menu.TextColor)
	}

	if game.BestScore > 0 {
		best := fmt.Sprintf("Best score: %d", game.BestScore)
		y := cfg.Menu.HelpStartY + float64(len(cfg.Menu.HelpLines)+1)*cfg.Menu.HelpLineHeight
		text.Draw(screen, best, helpFont, centerTextX(best, helpFont, width), int(y), cfg.Menu.TitleColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(height)-16, cfg.Menu.HintColor)
}

// getMenuHint returns the start prompt for the last used input device
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to start"
	case components.InputXbox:
		return "Press A to start"
	}
	return "Press Enter to start"
}

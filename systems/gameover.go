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

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateGame(e).State != cfg.StateGameOver {
		return
	}
	drawEndScreen(e, screen, cfg.GameOver)
}

// DrawVictory renders the screen shown after the last wave is cleared
func DrawVictory(e *ecs.ECS, screen *ebiten.Image) {
	if GetOrCreateGame(e).State != cfg.StateVictory {
		return
	}
	drawEndScreen(e, screen, cfg.Victory)
}

func drawEndScreen(e *ecs.ECS, screen *ebiten.Image, layout cfg.EndScreenConfig) {
	game := GetOrCreateGame(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		layout.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	text.Draw(screen, layout.Title, titleFont, centerTextX(layout.Title, titleFont, width), int(layout.TitleY), layout.TitleColor)

	scoreFont := fonts.Bold.Get()
	score := fmt.Sprintf("Score: %d   Best: %d", game.Score, game.BestScore)
	text.Draw(screen, score, scoreFont, centerTextX(score, scoreFont, width), int(layout.ScoreY), layout.TextColor)

	waves := fmt.Sprintf("Reached wave %d of %d", game.Scenario.CurrentWave+1, game.Scenario.MaxWaves)
	wavesFont := fonts.Regular.Get()
	text.Draw(screen, waves, wavesFont, centerTextX(waves, wavesFont, width), int(layout.ScoreY)+30, layout.TextColor)

	input := getOrCreateInput(e)
	hint := getEndScreenHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), int(layout.HintY), layout.HintColor)
}

// getEndScreenHint returns the return-to-menu prompt for the last used input device
func getEndScreenHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Press Cross to return to the menu"
	case components.InputXbox:
		return "Press A to return to the menu"
	}
	return "Press Enter to return to the menu"
}

package systems

import (
	"fmt"

	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/fonts"
	"github.com/automoto/shipwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders score, best score, wave progress and health pips in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !isArenaVisible(ecs) {
		return
	}
	game := GetOrCreateGame(ecs)
	face := fonts.Regular.Get()

	x := int(cfg.HUD.Margin)
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	for _, line := range []string{
		fmt.Sprintf("Score: %d", game.Score),
		fmt.Sprintf("Best: %d", game.BestScore),
		fmt.Sprintf("Wave: %d/%d", game.Scenario.CurrentWave+1, game.Scenario.MaxWaves),
	} {
		text.Draw(screen, line, face, x, int(y), cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	drawHealthPips(screen, float32(cfg.HUD.Margin), float32(y-cfg.HUD.LineHeight/2), PlayerHealth(playerEntry), game.Tuning.Player.Health)
}

func drawHealthPips(screen *ebiten.Image, x, y float32, current, total int) {
	size := cfg.HUD.PipSize
	for i := 0; i < total; i++ {
		clr := cfg.HUD.HealthBgColor
		if i < current {
			clr = cfg.HUD.HealthColor
		}
		vector.FillRect(screen, x+float32(i)*(size+cfg.HUD.PipGap), y, size, size, clr, false)
	}
}

package systems

import (
	"fmt"

	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		game := GetOrCreateGame(ecs)
		game.Debug = !game.Debug
	}
}

// DrawDebug outlines every object in the collision space and prints the
// session counters.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	game := GetOrCreateGame(ecs)
	if !game.Debug {
		return
	}

	space := getOrCreateSpace(ecs)
	for _, obj := range space.Objects() {
		c := cfg.Debug.OtherColor
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Debug.PlayerColor
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = cfg.Debug.EnemyColor
		}

		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(obj.X), float32(obj.Y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(obj.X+obj.W-1), float32(obj.Y), 1, float32(obj.H), c, false) // Right
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  %s  enemies %d  dt %.3f",
		ebiten.ActualTPS(), game.State, CountEnemies(ecs), game.DeltaTime), 4, screen.Bounds().Dy()-16)
}

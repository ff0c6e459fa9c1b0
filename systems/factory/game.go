package factory

import (
	"math/rand"

	"github.com/automoto/shipwave/archetypes"
	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the session singleton in the menu state. The tuning is
// not read until the session is initialized.
func CreateGame(ecs *ecs.ECS, source func() (*cfg.Tuning, error), rng *rand.Rand) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{
		State:        cfg.StateMenu,
		Tuning:       cfg.DefaultTuning(),
		TuningSource: source,
		RNG:          rng,
		Debug:        cfg.Debug.Enabled,
	})
	return game
}

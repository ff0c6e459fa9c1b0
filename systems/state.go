package systems

import (
	"errors"
	"log"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/systems/factory"
	"github.com/automoto/shipwave/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameState applies the input-driven transitions of the session state
// machine. Death and victory are raised by the combat and wave systems.
func UpdateGameState(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)
	input := getOrCreateInput(ecs)

	switch game.State {
	case cfg.StateMenu:
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			StartGame(ecs)
		}
	case cfg.StatePlaying:
		if GetAction(input, cfg.ActionPause).JustPressed {
			clearAttack(ecs)
			setState(game, cfg.StatePaused)
		}
	case cfg.StatePaused:
		if GetAction(input, cfg.ActionPause).JustPressed {
			setState(game, cfg.StatePlaying)
		}
	case cfg.StateGameOver, cfg.StateVictory:
		if GetAction(input, cfg.ActionConfirm).JustPressed {
			Initialize(ecs)
		}
	}
}

// Initialize puts the session back into a fresh menu: tuning reloaded,
// ship rebuilt at the center, arena emptied, wave and score reset.
// The best score is kept.
func Initialize(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)

	game.Tuning = loadTuning(game)

	clearEnemies(ecs)
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		removeEntity(ecs, playerEntry)
	}
	getOrCreateSpace(ecs)
	factory.CreatePlayer(ecs, game.Tuning.Player)

	resetScenario(game, 0)
	game.Score = 0
	setState(game, cfg.StateMenu)
}

// clearAttack drops the attack latch, which UpdatePlayer only refreshes
// while playing.
func clearAttack(ecs *ecs.ECS) {
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		components.Player.Get(playerEntry).Attacking = false
	}
}

func loadTuning(game *components.GameData) *cfg.Tuning {
	if game.TuningSource == nil {
		return cfg.DefaultTuning()
	}
	tuning, err := game.TuningSource()
	if err == nil && tuning == nil {
		err = errors.New("tuning source returned no tuning")
	}
	if err == nil {
		err = tuning.Validate()
	}
	if err != nil {
		log.Printf("[config] %v; using built-in tuning", err)
		return cfg.DefaultTuning()
	}
	return tuning
}

func setState(game *components.GameData, state cfg.GameStateID) {
	if game.State == state {
		return
	}
	log.Printf("[state] %s -> %s", game.State, state)
	game.State = state
}

package components

import (
	"image/color"
	"math/rand"

	cfg "github.com/automoto/shipwave/config"
	"github.com/yohamta/donburi"
)

// ScenarioData is the wave progression record. It changes only when a wave starts.
type ScenarioData struct {
	CurrentWave           int
	MaxWaves              int
	EnemiesPerWave        int
	BaseEnemyHealth       int
	EnemyHealthMultiplier float64
	EnemyColor            color.RGBA
}

// GameData is the per-session singleton: state machine, score and the
// values every system reads.
type GameData struct {
	State     cfg.GameStateID
	Score     int
	BestScore int
	Scenario  ScenarioData
	Tuning    *cfg.Tuning
	RNG       *rand.Rand

	// TuningSource is reloaded by every reset to the menu.
	TuningSource func() (*cfg.Tuning, error)

	DeltaTime float64 // seconds since the previous update

	// Debug shows the collision overlay.
	Debug bool
}

var Game = donburi.NewComponentType[GameData]()

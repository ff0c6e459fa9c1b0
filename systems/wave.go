package systems

import (
	"log"
	"math"
	"math/rand"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/systems/factory"
	"github.com/automoto/shipwave/tags"
	"github.com/yohamta/donburi/ecs"
)

// StartGame sets up wave 0 and switches the session to playing.
func StartGame(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)
	clearEnemies(ecs)
	beginWave(ecs, game, 0)
	setState(game, cfg.StatePlaying)
}

// UpdateWaves advances to the next wave once the arena is empty, or ends
// the session in victory after the last wave.
func UpdateWaves(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)
	if game.State != cfg.StatePlaying || CountEnemies(ecs) > 0 {
		return
	}

	if game.Scenario.CurrentWave >= game.Scenario.MaxWaves-1 {
		log.Printf("[wave] all %d waves cleared, score %d", game.Scenario.MaxWaves, game.Score)
		setState(game, cfg.StateVictory)
		return
	}

	StartNewWave(ecs)
}

// StartNewWave increments the wave counter and spawns its enemies.
func StartNewWave(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)
	beginWave(ecs, game, game.Scenario.CurrentWave+1)
}

func beginWave(ecs *ecs.ECS, game *components.GameData, wave int) {
	resetScenario(game, wave)

	template := game.Tuning.Wave(wave)
	template.Health = EnemyHealthForWave(game.Scenario.BaseEnemyHealth, game.Scenario.EnemyHealthMultiplier, wave)
	count := EnemiesForWave(game.Scenario.EnemiesPerWave, wave)

	SpawnEnemies(ecs, count, template)
	log.Printf("[wave] wave %d/%d: %d enemies, %d health", wave+1, game.Scenario.MaxWaves, count, template.Health)
}

// resetScenario loads the scenario values for the given wave from the tuning.
func resetScenario(game *components.GameData, wave int) {
	template := game.Tuning.Wave(wave)
	game.Scenario = components.ScenarioData{
		CurrentWave:           wave,
		MaxWaves:              game.Tuning.Scenario.MaxWaves,
		EnemiesPerWave:        game.Tuning.Scenario.EnemiesPerWave,
		BaseEnemyHealth:       template.Health,
		EnemyHealthMultiplier: game.Tuning.Scenario.EnemyHealthMultiplier,
		EnemyColor:            template.Color.RGBA(),
	}
}

// EnemiesForWave returns floor(base x (1 + wave/2)).
func EnemiesForWave(base, wave int) int {
	return int(float64(base) * (1 + float64(wave)/2))
}

// EnemyHealthForWave scales the wave's base health, never below 1.
func EnemyHealthForWave(base int, multiplier float64, wave int) int {
	health := int(math.Round(float64(base) * math.Pow(multiplier, float64(wave))))
	if health < 1 {
		return 1
	}
	return health
}

// SpawnEnemies places count enemies built from template away from the ship.
func SpawnEnemies(ecs *ecs.ECS, count int, template cfg.EntityConfig) {
	game := GetOrCreateGame(ecs)
	combat := game.Tuning.Combat

	avoid := components.Vector{X: float64(cfg.C.Width) / 2, Y: float64(cfg.C.Height) / 2}
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		avoid = PlayerRect(playerEntry).Center()
	}

	for i := 0; i < count; i++ {
		pos, ok := SpawnPosition(game.RNG, template.Size, avoid, combat.SpawnSafeDistance, combat.SpawnAttempts)
		if !ok {
			log.Printf("[wave] no spawn point %.0fpx from the ship after %d attempts, using the farthest candidate",
				combat.SpawnSafeDistance, combat.SpawnAttempts)
		}
		velocity := SpawnVelocity(game.RNG, template.SpeedMin, template.SpeedMax)
		factory.CreateEnemy(ecs, pos.X, pos.Y, velocity, template, combat.PointsPerHealth)
	}
}

// SpawnPosition samples top-left corners for a size x size enemy until its
// center is at least minDistance from avoid. After attempts candidates it
// returns the farthest one seen and false.
func SpawnPosition(rng *rand.Rand, size float64, avoid components.Vector, minDistance float64, attempts int) (components.Vector, bool) {
	maxX := math.Max(0, float64(cfg.C.Width)-size)
	maxY := math.Max(0, float64(cfg.C.Height)-size)

	var best components.Vector
	bestDistance := -1.0
	for i := 0; i < attempts; i++ {
		candidate := components.Vector{X: rng.Float64() * maxX, Y: rng.Float64() * maxY}
		d := components.Distance(components.Rect{X: candidate.X, Y: candidate.Y, W: size, H: size}.Center(), avoid)
		if d >= minDistance {
			return candidate, true
		}
		if d > bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best, false
}

// SpawnVelocity picks each axis speed uniformly in [speedMin, speedMax] with a random sign.
func SpawnVelocity(rng *rand.Rand, speedMin, speedMax float64) components.Vector {
	axis := func() float64 {
		v := speedMin + rng.Float64()*(speedMax-speedMin)
		if rng.Intn(2) == 0 {
			v = -v
		}
		return v
	}
	return components.Vector{X: axis(), Y: axis()}
}

package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/systems/factory"
	"github.com/automoto/shipwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// newTestSession builds a world laid out like the arena scene and resets it
// to the menu. A nil tuning uses the built-in values.
func newTestSession(t *testing.T, tuning *cfg.Tuning) *ecs.ECS {
	t.Helper()
	if tuning == nil {
		tuning = cfg.DefaultTuning()
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateGame(e, func() (*cfg.Tuning, error) { return tuning, nil }, testRNG())
	Initialize(e)
	GetOrCreateGame(e).DeltaTime = 1.0 / 60
	return e
}

// keysFor reports the first bound key of each action as held.
func keysFor(actions ...cfg.ActionID) func(ebiten.Key) bool {
	held := map[ebiten.Key]bool{}
	for _, a := range actions {
		held[cfg.Input.Bindings[a].Keys[0]] = true
	}
	return func(k ebiten.Key) bool {
		return held[k]
	}
}

// step runs one frame in scene order with the given actions held.
func step(e *ecs.ECS, actions ...cfg.ActionID) {
	PollInput(getOrCreateInput(e), keysFor(actions...))
	UpdateGameState(e)
	WithGameplayChecks(UpdatePlayer)(e)
	WithGameplayChecks(UpdateEnemies)(e)
	WithGameplayChecks(UpdateEffects)(e)
	WithGameplayChecks(UpdateCombat)(e)
	WithGameplayChecks(UpdateWaves)(e)
}

func mustPlayer(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok, "player entity missing")
	return entry
}

func enemyEntries(e *ecs.ECS) []*donburi.Entry {
	var entries []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}

// placeEnemy spawns an enemy with its top-left at (x, y).
func placeEnemy(e *ecs.ECS, x, y, size float64, velocity components.Vector, health int) *donburi.Entry {
	template := cfg.EntityConfig{
		Size:     size,
		SpeedMin: 1,
		SpeedMax: 1,
		Health:   health,
		Color:    cfg.Color{R: 255, A: 255},
	}
	return factory.CreateEnemy(e, x, y, velocity, template, 100)
}

// startPlaying confirms from the menu and empties the arena so the test can
// place its own enemies before the next frame.
func startPlaying(t *testing.T, e *ecs.ECS) {
	t.Helper()
	step(e, cfg.ActionConfirm)
	require.Equal(t, cfg.StatePlaying, GetOrCreateGame(e).State)
	clearEnemies(e)
}

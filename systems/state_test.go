package systems

import (
	"errors"
	"testing"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestInitializeResetsToMenu(t *testing.T) {
	e := newTestSession(t, nil)
	game := GetOrCreateGame(e)

	assert.Equal(t, cfg.StateMenu, game.State)
	assert.Zero(t, game.Score)
	assert.Zero(t, game.Scenario.CurrentWave)
	assert.Zero(t, CountEnemies(e))
	assert.Equal(t, 3, PlayerHealth(mustPlayer(t, e)))
}

func TestMenuConfirmStartsGame(t *testing.T) {
	e := newTestSession(t, nil)
	game := GetOrCreateGame(e)

	step(e)
	assert.Equal(t, cfg.StateMenu, game.State, "menu waits for confirm")

	step(e, cfg.ActionConfirm)
	assert.Equal(t, cfg.StatePlaying, game.State)
	assert.Equal(t, 2, CountEnemies(e))
	assert.Equal(t, 3, PlayerHealth(mustPlayer(t, e)))
}

func TestPauseFreezesGameplay(t *testing.T) {
	e := newTestSession(t, nil)
	game := GetOrCreateGame(e)
	step(e, cfg.ActionConfirm)

	snapshot := func() []components.Rect {
		var rects []components.Rect
		for _, enemy := range enemyEntries(e) {
			rects = append(rects, EnemyRect(enemy))
		}
		return rects
	}

	step(e, cfg.ActionPause)
	require.Equal(t, cfg.StatePaused, game.State)
	frozen := snapshot()

	step(e)
	step(e, cfg.ActionMoveRight, cfg.ActionAttack)
	assert.Equal(t, cfg.StatePaused, game.State)
	assert.Equal(t, frozen, snapshot())
	assert.Equal(t, 270.0, components.Player.Get(mustPlayer(t, e)).Heading)

	step(e)
	step(e, cfg.ActionPause)
	assert.Equal(t, cfg.StatePlaying, game.State)
	assert.NotEqual(t, frozen, snapshot())
}

func TestGameOverConfirmReturnsToMenu(t *testing.T) {
	e := newTestSession(t, nil)
	startPlaying(t, e)
	game := GetOrCreateGame(e)
	game.Score = 700
	game.BestScore = 700

	components.Health.Get(mustPlayer(t, e)).Current = 1
	placeEnemy(e, 390, 215, 20, components.Vector{}, 5)
	step(e)
	require.Equal(t, cfg.StateGameOver, game.State)

	step(e, cfg.ActionConfirm)

	assert.Equal(t, cfg.StateMenu, game.State)
	assert.Zero(t, game.Score)
	assert.Equal(t, 700, game.BestScore)
	assert.Zero(t, CountEnemies(e))
	assert.Zero(t, game.Scenario.CurrentWave)

	player := mustPlayer(t, e)
	assert.Equal(t, 3, PlayerHealth(player))
	assert.Equal(t, components.Vector{X: 400, Y: 225}, components.Player.Get(player).Position)

	step(e, cfg.ActionConfirm)
	assert.Equal(t, cfg.StateMenu, game.State, "a held confirm does not start a new game")
}

func TestVictoryConfirmReturnsToMenu(t *testing.T) {
	e := newTestSession(t, nil)
	startPlaying(t, e)
	game := GetOrCreateGame(e)
	game.Scenario.CurrentWave = game.Scenario.MaxWaves - 1
	game.Score = 1200
	game.BestScore = 1200

	step(e)
	require.Equal(t, cfg.StateVictory, game.State)

	step(e)
	assert.Equal(t, cfg.StateVictory, game.State)

	step(e, cfg.ActionConfirm)
	assert.Equal(t, cfg.StateMenu, game.State)
	assert.Zero(t, game.Score)
	assert.Equal(t, 1200, game.BestScore)
}

func TestInitializeFallsBackOnTuningError(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateGame(e, func() (*cfg.Tuning, error) {
		return nil, errors.New("broken tuning")
	}, testRNG())

	Initialize(e)

	game := GetOrCreateGame(e)
	assert.Equal(t, cfg.DefaultTuning(), game.Tuning)
	assert.Equal(t, cfg.StateMenu, game.State)
	assert.Equal(t, 3, PlayerHealth(mustPlayer(t, e)))
}

func TestInitializeReloadsTuning(t *testing.T) {
	tuning := cfg.DefaultTuning()
	tuning.Player.Health = 7

	e := newTestSession(t, tuning)

	assert.Equal(t, 7, PlayerHealth(mustPlayer(t, e)))
	assert.Same(t, tuning, GetOrCreateGame(e).Tuning)
}

func TestGetOrCreateGame(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	game := GetOrCreateGame(e)

	assert.Equal(t, cfg.StateMenu, game.State)
	assert.NotNil(t, game.Tuning)
	assert.NotNil(t, game.RNG)
	assert.Same(t, game, GetOrCreateGame(e))
}

func TestPauseClearsAttack(t *testing.T) {
	e := newTestSession(t, nil)
	startPlaying(t, e)
	player := mustPlayer(t, e)

	step(e, cfg.ActionAttack)
	require.True(t, IsAttacking(player))

	step(e, cfg.ActionPause)
	require.Equal(t, cfg.StatePaused, GetOrCreateGame(e).State)
	assert.False(t, IsAttacking(player))

	step(e)
	step(e, cfg.ActionPause)
	assert.Equal(t, cfg.StatePlaying, GetOrCreateGame(e).State)
	assert.False(t, IsAttacking(player), "resuming does not replay the attack")
}

func TestInitializeRejectsInvalidTuning(t *testing.T) {
	tuning := cfg.DefaultTuning()
	tuning.Waves = nil

	e := newTestSession(t, tuning)
	game := GetOrCreateGame(e)

	assert.Equal(t, cfg.DefaultTuning(), game.Tuning)

	step(e, cfg.ActionConfirm)
	assert.Equal(t, cfg.StatePlaying, game.State)
	assert.Equal(t, 2, CountEnemies(e))
}

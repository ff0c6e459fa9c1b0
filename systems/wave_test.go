package systems

import (
	"testing"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemiesForWave(t *testing.T) {
	for wave, want := range []int{2, 3, 4, 5, 6} {
		assert.Equal(t, want, EnemiesForWave(2, wave), "wave %d", wave)
	}
	assert.Equal(t, 4, EnemiesForWave(3, 1), "fractions are floored")
}

func TestEnemyHealthForWave(t *testing.T) {
	assert.Equal(t, 2, EnemyHealthForWave(2, 1.0, 3))
	assert.Equal(t, 5, EnemyHealthForWave(2, 1.5, 2))
	assert.Equal(t, 1, EnemyHealthForWave(1, 0.1, 3), "health never drops below one")
}

func TestStartGameSpawnsFirstWave(t *testing.T) {
	e := newTestSession(t, nil)
	game := GetOrCreateGame(e)

	StartGame(e)

	assert.Equal(t, cfg.StatePlaying, game.State)
	assert.Equal(t, 0, game.Scenario.CurrentWave)
	assert.Equal(t, 5, game.Scenario.MaxWaves)
	assert.Equal(t, game.Tuning.Waves[0].Color.RGBA(), game.Scenario.EnemyColor)

	enemies := enemyEntries(e)
	require.Len(t, enemies, 2)
	playerCenter := PlayerRect(mustPlayer(t, e)).Center()
	for _, enemy := range enemies {
		r := EnemyRect(enemy)
		assert.Equal(t, 50.0, r.W)
		assert.Equal(t, 1, EnemyHealth(enemy))
		assert.GreaterOrEqual(t, components.Distance(r.Center(), playerCenter), 150.0)
	}
}

func TestClearedWaveStartsNext(t *testing.T) {
	e := newTestSession(t, nil)
	startPlaying(t, e)
	game := GetOrCreateGame(e)

	step(e)

	assert.Equal(t, 1, game.Scenario.CurrentWave)
	enemies := enemyEntries(e)
	require.Len(t, enemies, 3)
	for _, enemy := range enemies {
		assert.Equal(t, 46.0, EnemyRect(enemy).W)
		assert.Equal(t, 2, EnemyHealth(enemy))
		assert.Equal(t, 200, EnemyPoints(enemy))
	}
}

func TestWaveConfigFallsBackToFirst(t *testing.T) {
	tuning := cfg.DefaultTuning()
	tuning.Waves = tuning.Waves[:2]
	tuning.Scenario.MaxWaves = 4

	e := newTestSession(t, tuning)
	startPlaying(t, e)
	game := GetOrCreateGame(e)
	game.Scenario.CurrentWave = 1

	StartNewWave(e)

	assert.Equal(t, 2, game.Scenario.CurrentWave)
	enemies := enemyEntries(e)
	require.Len(t, enemies, 4)
	for _, enemy := range enemies {
		assert.Equal(t, tuning.Waves[0].Size, EnemyRect(enemy).W)
	}
}

func TestLastWaveClearedIsVictory(t *testing.T) {
	e := newTestSession(t, nil)
	startPlaying(t, e)
	game := GetOrCreateGame(e)
	game.Scenario.CurrentWave = game.Scenario.MaxWaves - 1

	step(e)

	assert.Equal(t, cfg.StateVictory, game.State)
	assert.Zero(t, CountEnemies(e))
}

func TestSingleWaveScenario(t *testing.T) {
	tuning := cfg.DefaultTuning()
	tuning.Scenario.MaxWaves = 1

	e := newTestSession(t, tuning)
	startPlaying(t, e)

	step(e)

	assert.Equal(t, cfg.StateVictory, GetOrCreateGame(e).State)
}

func TestSpawnPositionKeepsDistance(t *testing.T) {
	rng := testRNG()
	avoid := components.Vector{X: 400, Y: 225}

	for i := 0; i < 200; i++ {
		pos, ok := SpawnPosition(rng, 50, avoid, 150, 100)
		require.True(t, ok)

		assert.GreaterOrEqual(t, pos.X, 0.0)
		assert.LessOrEqual(t, pos.X, 750.0)
		assert.GreaterOrEqual(t, pos.Y, 0.0)
		assert.LessOrEqual(t, pos.Y, 400.0)

		center := components.Rect{X: pos.X, Y: pos.Y, W: 50, H: 50}.Center()
		assert.GreaterOrEqual(t, components.Distance(center, avoid), 150.0)
	}
}

func TestSpawnPositionFallsBackToFarthest(t *testing.T) {
	avoid := components.Vector{X: 400, Y: 225}

	pos, ok := SpawnPosition(testRNG(), 50, avoid, 10000, 20)
	assert.False(t, ok)

	// Replay the same candidates and check none was farther.
	rng := testRNG()
	farthest := components.Distance(components.Rect{X: pos.X, Y: pos.Y, W: 50, H: 50}.Center(), avoid)
	for i := 0; i < 20; i++ {
		c := components.Vector{X: rng.Float64() * 750, Y: rng.Float64() * 400}
		d := components.Distance(components.Rect{X: c.X, Y: c.Y, W: 50, H: 50}.Center(), avoid)
		assert.LessOrEqual(t, d, farthest)
	}
}

func TestSpawnVelocityRange(t *testing.T) {
	rng := testRNG()
	var negative, positive int

	for i := 0; i < 200; i++ {
		v := SpawnVelocity(rng, 1.5, 3.5)
		for _, axis := range []float64{v.X, v.Y} {
			speed := axis
			if speed < 0 {
				speed = -speed
				negative++
			} else {
				positive++
			}
			assert.GreaterOrEqual(t, speed, 1.5)
			assert.LessOrEqual(t, speed, 3.5)
		}
	}

	assert.Positive(t, negative)
	assert.Positive(t, positive)
}

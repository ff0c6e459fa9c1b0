package systems

import (
	"testing"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/stretchr/testify/assert"
)

func TestWoundedEnemyFlashes(t *testing.T) {
	e := newTestSession(t, nil)
	startPlaying(t, e)

	enemy := placeEnemy(e, 430, 210, 20, components.Vector{}, 3)

	step(e, cfg.ActionAttack)
	assert.True(t, isFlashing(enemy))

	for i := 0; i < cfg.Arena.HitFlashFrames; i++ {
		step(e)
	}
	assert.False(t, isFlashing(enemy))
	assert.False(t, enemy.HasComponent(components.Flash))
	assert.Equal(t, 2, EnemyHealth(enemy))
}

func TestDebugToggle(t *testing.T) {
	e := newTestSession(t, nil)
	game := GetOrCreateGame(e)
	input := getOrCreateInput(e)

	PollInput(input, keysFor(cfg.ActionToggleDebug))
	UpdateDebug(e)
	assert.True(t, game.Debug)

	PollInput(input, keysFor(cfg.ActionToggleDebug))
	UpdateDebug(e)
	assert.True(t, game.Debug, "holding the key does not toggle again")

	PollInput(input, keysFor())
	PollInput(input, keysFor(cfg.ActionToggleDebug))
	UpdateDebug(e)
	assert.False(t, game.Debug)
}

package systems

import (
	"testing"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestPollInputEdges(t *testing.T) {
	input := &components.InputData{}

	PollInput(input, keysFor(cfg.ActionAttack))
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionAttack))

	PollInput(input, keysFor(cfg.ActionAttack))
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionAttack))

	PollInput(input, keysFor())
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionAttack))

	PollInput(input, keysFor())
	assert.Equal(t, components.ActionState{}, GetAction(input, cfg.ActionAttack))
}

func TestPollInputAlternateKeys(t *testing.T) {
	input := &components.InputData{}

	PollInput(input, func(k ebiten.Key) bool { return k == ebiten.KeyD || k == ebiten.KeyEscape })

	assert.True(t, GetAction(input, cfg.ActionMoveRight).Pressed)
	assert.True(t, GetAction(input, cfg.ActionPause).JustPressed)
	assert.False(t, GetAction(input, cfg.ActionMoveLeft).Pressed)
	assert.Equal(t, components.InputKeyboard, input.LastInputMethod)
}

func TestAttackLatchesOncePerPress(t *testing.T) {
	e := newTestSession(t, nil)
	startPlaying(t, e)
	player := mustPlayer(t, e)

	step(e, cfg.ActionAttack)
	assert.True(t, IsAttacking(player))

	step(e, cfg.ActionAttack)
	assert.False(t, IsAttacking(player), "holding attack must not retrigger")

	step(e)
	assert.False(t, IsAttacking(player))

	step(e, cfg.ActionAttack)
	assert.True(t, IsAttacking(player))
}

func TestControllerTypeFromName(t *testing.T) {
	assert.Equal(t, components.InputPlayStation, controllerTypeFromName("sony dualsense wireless controller"))
	assert.Equal(t, components.InputPlayStation, controllerTypeFromName("ps4 controller"))
	assert.Equal(t, components.InputXbox, controllerTypeFromName("xbox wireless controller"))
	assert.Equal(t, components.InputXbox, controllerTypeFromName("generic usb gamepad"))
}

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Position Vector  // center of the ship
	Velocity Vector  // pixels per frame
	Heading  float64 // degrees clockwise from +X, in [0, 360)
	Size     float64

	Attacking bool // true only on the frame the attack was pressed

	Invulnerable bool
	InvulnTimer  float64      // seconds left
	InvulnTween  *gween.Tween // counts InvulnTimer down to zero
}

var Player = donburi.NewComponentType[PlayerData]()

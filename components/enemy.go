package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Velocity Vector // pixels per 1/60 s
	Points   int    // fixed at spawn
	Color    color.RGBA
}

var Enemy = donburi.NewComponentType[EnemyData]()

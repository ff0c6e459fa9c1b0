package systems

import (
	"math"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every enemy by its velocity scaled to a 60 fps frame
// and bounces it off the arena walls.
func UpdateEnemies(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		moveEnemy(e, game.DeltaTime)
	})
}

func moveEnemy(e *donburi.Entry, dt float64) {
	enemy := components.Enemy.Get(e)
	obj := components.Object.Get(e)

	scale := dt * 60
	obj.X += enemy.Velocity.X * scale
	obj.Y += enemy.Velocity.Y * scale

	maxX := float64(cfg.C.Width) - obj.W
	maxY := float64(cfg.C.Height) - obj.H

	// Reflect inward so a clamped enemy never sticks to the wall.
	if obj.X <= 0 {
		obj.X = 0
		enemy.Velocity.X = math.Abs(enemy.Velocity.X)
	} else if obj.X >= maxX {
		obj.X = maxX
		enemy.Velocity.X = -math.Abs(enemy.Velocity.X)
	}
	if obj.Y <= 0 {
		obj.Y = 0
		enemy.Velocity.Y = math.Abs(enemy.Velocity.Y)
	} else if obj.Y >= maxY {
		obj.Y = maxY
		enemy.Velocity.Y = -math.Abs(enemy.Velocity.Y)
	}

	obj.Update()
}

// HitEnemy subtracts damage from the enemy's health. Health may go negative.
func HitEnemy(e *donburi.Entry, damage int) {
	components.Health.Get(e).Current -= damage
}

func EnemyRect(e *donburi.Entry) components.Rect {
	return components.Object.Get(e).Rect()
}

func EnemyHealth(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

func EnemyPoints(e *donburi.Entry) int {
	return components.Enemy.Get(e).Points
}

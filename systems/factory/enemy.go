package factory

import (
	"github.com/automoto/shipwave/archetypes"
	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a square enemy with its top-left corner at (x, y).
// Health comes from the template; points are fixed here as health x pointsPerHealth.
func CreateEnemy(ecs *ecs.ECS, x, y float64, velocity components.Vector, template cfg.EntityConfig, pointsPerHealth int) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	size := template.Size
	obj := resolv.NewObject(x, y, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	components.Enemy.SetValue(enemy, components.EnemyData{
		Velocity: velocity,
		Points:   template.Health * pointsPerHealth,
		Color:    template.Color.RGBA(),
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: template.Health,
		Max:     template.Health,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return enemy
}

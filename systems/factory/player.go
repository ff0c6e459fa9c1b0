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

// CreatePlayer spawns the ship at the center of the arena, nose up.
func CreatePlayer(ecs *ecs.ECS, tuning cfg.PlayerTuning) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := tuning.Size
	cx := float64(cfg.C.Width) / 2
	cy := float64(cfg.C.Height) / 2

	obj := resolv.NewObject(cx-size/2, cy-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Position: components.Vector{X: cx, Y: cy},
		Heading:  270,
		Size:     size,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: tuning.Health,
		Max:     tuning.Health,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}

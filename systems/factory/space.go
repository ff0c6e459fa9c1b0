package factory

import (
	"github.com/automoto/shipwave/archetypes"
	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the collision space covering the arena, divided into
// square cells of cfg.C.SpaceCellSize pixels.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	cell := cfg.C.SpaceCellSize
	components.Space.Set(entry, resolv.NewSpace(cfg.C.Width, cfg.C.Height, cell, cell))
	return entry
}

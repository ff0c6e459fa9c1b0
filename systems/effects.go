package systems

import (
	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts hit flashes down and drops the expired ones.
func UpdateEffects(ecs *ecs.ECS) {
	var expired []*donburi.Entry

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
		if flash.Duration <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		e.RemoveComponent(components.Flash)
	}
}

// TriggerFlash starts or restarts the hit flash on an entity
func TriggerFlash(entry *donburi.Entry) {
	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.SetValue(entry, components.FlashData{Duration: cfg.Arena.HitFlashFrames})
}

// isFlashing reports whether the entity is showing its hit flash
func isFlashing(entry *donburi.Entry) bool {
	return entry.HasComponent(components.Flash) && components.Flash.Get(entry).Duration > 0
}

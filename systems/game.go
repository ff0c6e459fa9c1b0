package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/systems/factory"
	"github.com/automoto/shipwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGame returns the singleton session component, creating one that
// reads the embedded tuning if the scene has not set it up.
func GetOrCreateGame(ecs *ecs.ECS) *components.GameData {
	entry, ok := components.Game.First(ecs.World)
	if !ok {
		entry = factory.CreateGame(ecs, cfg.LoadTuning, rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return components.Game.Get(entry)
}

// getOrCreateSpace returns the collision space covering the arena.
func getOrCreateSpace(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		entry = factory.CreateSpace(ecs)
	}
	return components.Space.Get(entry)
}

// WithGameplayChecks wraps a system to run only while a round is being played.
// Paused, menu and end screens freeze the simulation.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGame(e).State != cfg.StatePlaying {
			return
		}
		system(e)
	}
}

// IsPlaying reports whether the session is in the playing state.
func IsPlaying(ecs *ecs.ECS) bool {
	return GetOrCreateGame(ecs).State == cfg.StatePlaying
}

// CountEnemies returns the number of live enemy entities.
func CountEnemies(ecs *ecs.ECS) int {
	count := 0
	tags.Enemy.Each(ecs.World, func(*donburi.Entry) {
		count++
	})
	return count
}

func awardPoints(game *components.GameData, points int) {
	game.Score += points
	if game.Score > game.BestScore {
		game.BestScore = game.Score
	}
}

// removeEntity drops an entity from both the collision space and the world.
func removeEntity(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			getOrCreateSpace(ecs).Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}

// clearEnemies removes every enemy, collecting first so the query is not
// mutated while iterating.
func clearEnemies(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	})
	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}

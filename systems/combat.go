package systems

import (
	"log"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Pixels added around a candidate query before the exact overlap test.
const candidatePadding = 1.0

// AttackArea returns the square struck by an attack: centered on the ship,
// with a half extent of rangeFactor ship widths.
func AttackArea(player components.Rect, rangeFactor float64) components.Rect {
	center := player.Center()
	half := player.W * rangeFactor
	return components.Rect{
		X: center.X - half,
		Y: center.Y - half,
		W: half * 2,
		H: half * 2,
	}
}

// UpdateCombat resolves the ship's attack, removes destroyed enemies and
// then applies contact damage to the ship.
func UpdateCombat(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	if IsAttacking(playerEntry) {
		resolveAttack(ecs, game, playerEntry)
		removeDeadEnemies(ecs)
	}

	resolveContacts(ecs, game, playerEntry)
}

func resolveAttack(ecs *ecs.ECS, game *components.GameData, playerEntry *donburi.Entry) {
	combat := game.Tuning.Combat
	area := AttackArea(PlayerRect(playerEntry), combat.AttackRangeFactor)

	multiplier := game.Scenario.CurrentWave + 1
	for _, enemyEntry := range overlappingEnemies(getOrCreateSpace(ecs), area, tags.ResolvAttack) {
		wasAlive := IsAlive(enemyEntry)
		HitEnemy(enemyEntry, combat.AttackDamage)
		if wasAlive && !IsAlive(enemyEntry) {
			awardPoints(game, EnemyPoints(enemyEntry)*multiplier)
			continue
		}
		TriggerFlash(enemyEntry)
	}
}

// removeDeadEnemies runs after every hit has been applied; entities are
// collected first and removed afterwards.
func removeDeadEnemies(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !IsAlive(e) {
			toRemove = append(toRemove, e)
		}
	})
	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}

func resolveContacts(ecs *ecs.ECS, game *components.GameData, playerEntry *donburi.Entry) {
	for range overlappingEnemies(getOrCreateSpace(ecs), PlayerRect(playerEntry), tags.ResolvPlayer) {
		if !TakeDamage(playerEntry, game.Tuning.Player.Invulnerability) {
			continue
		}
		if !IsAlive(playerEntry) {
			log.Printf("[combat] ship destroyed on wave %d, score %d", game.Scenario.CurrentWave+1, game.Score)
			setState(game, cfg.StateGameOver)
			return
		}
	}
}

// overlappingEnemies returns the live enemies whose bounds strictly overlap
// area. Candidates come from a temporary object tagged probeTag and grown
// by candidatePadding on every side, since resolv assigns an object's far
// edge to cells from X+W-1.
func overlappingEnemies(space *resolv.Space, area components.Rect, probeTag string) []*donburi.Entry {
	probe := resolv.NewObject(
		area.X-candidatePadding, area.Y-candidatePadding,
		area.W+2*candidatePadding, area.H+2*candidatePadding,
		probeTag,
	)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	seen := make(map[*resolv.Object]bool, len(check.Objects))
	var hits []*donburi.Entry
	for _, other := range check.Objects {
		if seen[other] {
			continue
		}
		seen[other] = true

		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !IsAlive(entry) {
			continue
		}
		if area.Overlaps(components.ObjectData{Object: other}.Rect()) {
			hits = append(hits, entry)
		}
	}
	return hits
}

package scenes

import (
	"image/color"
	"math/rand"
	"sync"
	"time"

	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/systems"
	"github.com/automoto/shipwave/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene owns the single game session: one world holding the ship,
// the enemies, the collision space and the session state.
type ArenaScene struct {
	ecs        *ecs.ECS
	once       sync.Once
	lastUpdate time.Time
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)

	systems.GetOrCreateGame(as.ecs).DeltaTime = as.frameDelta()
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// frameDelta returns seconds since the previous update, capped so a stalled
// window does not teleport entities.
func (as *ArenaScene) frameDelta() float64 {
	now := time.Now()
	dt := now.Sub(as.lastUpdate).Seconds()
	as.lastUpdate = now
	if dt > cfg.MaxDeltaTime {
		dt = cfg.MaxDeltaTime
	}
	return dt
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())

	factory.CreateSpace(as.ecs)
	factory.CreateGame(as.ecs, cfg.LoadTuning, rand.New(rand.NewSource(time.Now().UnixNano())))
	systems.Initialize(as.ecs)

	// Input first, then state transitions, then the gated simulation
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdateDebug)
	as.ecs.AddSystem(systems.UpdateGameState)
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	as.ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWaves))

	// Renderers
	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawAttackArea)
	as.ecs.AddRenderer(cfg.Default, systems.DrawEnemies)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	as.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPause)
	as.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	as.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	as.ecs.AddRenderer(cfg.Default, systems.DrawVictory)
	as.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	as.lastUpdate = time.Now()
}

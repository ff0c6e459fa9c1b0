package systems

import (
	"math"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steers, moves and clamps the ship, latches the attack edge
// and counts down invulnerability.
func UpdatePlayer(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updatePlayer(e, input, game.Tuning.Player, game.DeltaTime)
	})
}

func updatePlayer(e *donburi.Entry, input *components.InputData, tuning cfg.PlayerTuning, dt float64) {
	player := components.Player.Get(e)

	dx, dy := 0.0, 0.0
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx++
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy++
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy--
	}

	if dx != 0 || dy != 0 {
		player.Heading = StepHeading(player.Heading, TargetHeading(dx, dy), tuning.TurnRate)
		rad := player.Heading * math.Pi / 180
		player.Velocity.X += math.Cos(rad) * tuning.Acceleration
		player.Velocity.Y += math.Sin(rad) * tuning.Acceleration
	}

	player.Velocity.X *= tuning.Drag
	player.Velocity.Y *= tuning.Drag
	limitSpeed(&player.Velocity, tuning.MaxSpeed)

	player.Position.X += player.Velocity.X
	player.Position.Y += player.Velocity.Y
	clampToArena(player)
	syncPlayerObject(e)

	player.Attacking = GetAction(input, cfg.ActionAttack).JustPressed

	updateInvulnerability(player, dt)
}

// TargetHeading maps a movement direction to one of the eight compass
// headings in degrees, 0 pointing right and 90 pointing down.
func TargetHeading(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	return normalizeDegrees(math.Round(deg/45) * 45)
}

// StepHeading moves current toward target along the shorter arc by the
// given fraction of the remaining difference.
func StepHeading(current, target, rate float64) float64 {
	return normalizeDegrees(current + shortestAngle(target-current)*rate)
}

// shortestAngle wraps d into (-180, 180].
func shortestAngle(d float64) float64 {
	d = math.Mod(d, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}

// normalizeDegrees wraps d into [0, 360).
func normalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func limitSpeed(v *components.Vector, maxSpeed float64) {
	speed := math.Hypot(v.X, v.Y)
	if speed <= maxSpeed || speed == 0 {
		return
	}
	scale := maxSpeed / speed
	v.X *= scale
	v.Y *= scale
}

// clampToArena keeps the ship fully inside the arena and zeroes velocity
// along any axis that hit a wall.
func clampToArena(player *components.PlayerData) {
	half := player.Size / 2
	maxX := float64(cfg.C.Width) - half
	maxY := float64(cfg.C.Height) - half

	if player.Position.X < half {
		player.Position.X = half
		player.Velocity.X = 0
	} else if player.Position.X > maxX {
		player.Position.X = maxX
		player.Velocity.X = 0
	}
	if player.Position.Y < half {
		player.Position.Y = half
		player.Velocity.Y = 0
	} else if player.Position.Y > maxY {
		player.Position.Y = maxY
		player.Velocity.Y = 0
	}
}

// syncPlayerObject moves the collision object to match the ship's center.
func syncPlayerObject(e *donburi.Entry) {
	player := components.Player.Get(e)
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	obj.X = player.Position.X - player.Size/2
	obj.Y = player.Position.Y - player.Size/2
	obj.Update()
}

func updateInvulnerability(player *components.PlayerData, dt float64) {
	if !player.Invulnerable {
		return
	}
	if player.InvulnTween == nil {
		player.InvulnTween = newInvulnTween(player.InvulnTimer)
	}
	remaining, done := player.InvulnTween.Update(float32(dt))
	player.InvulnTimer = float64(remaining)
	if done {
		player.Invulnerable = false
		player.InvulnTimer = 0
		player.InvulnTween = nil
	}
}

func newInvulnTween(seconds float64) *gween.Tween {
	return gween.New(float32(seconds), 0, float32(seconds), ease.Linear)
}

// TakeDamage applies one point of contact damage unless the ship is
// invulnerable. A hit starts a new invulnerability window.
func TakeDamage(e *donburi.Entry, invulnerability float64) bool {
	player := components.Player.Get(e)
	if player.Invulnerable {
		return false
	}

	health := components.Health.Get(e)
	health.Current--
	if health.Current < 0 {
		health.Current = 0
	}

	player.Invulnerable = true
	player.InvulnTimer = invulnerability
	player.InvulnTween = newInvulnTween(invulnerability)
	return true
}

// PlayerRect returns the ship's bounding square.
func PlayerRect(e *donburi.Entry) components.Rect {
	player := components.Player.Get(e)
	return components.Rect{
		X: player.Position.X - player.Size/2,
		Y: player.Position.Y - player.Size/2,
		W: player.Size,
		H: player.Size,
	}
}

// IsAttacking reports whether the attack was triggered this frame.
func IsAttacking(e *donburi.Entry) bool {
	return components.Player.Get(e).Attacking
}

// IsAlive reports whether the entity has health left.
func IsAlive(e *donburi.Entry) bool {
	return components.Health.Get(e).Current > 0
}

// PlayerHealth returns the ship's remaining health.
func PlayerHealth(e *donburi.Entry) int {
	return components.Health.Get(e).Current
}

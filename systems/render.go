package systems

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/shipwave/components"
	cfg "github.com/automoto/shipwave/config"
	"github.com/automoto/shipwave/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Rear corners of the ship sit this many degrees either side of the nose.
const shipWingAngle = 140.0

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image

	shipVertices = make([]ebiten.Vertex, 3)
	shipIndices  = []uint16{0, 1, 2}
	shipDrawOp   = &ebiten.DrawTrianglesOptions{AntiAlias: true}
)

// isArenaVisible reports whether the play field should be drawn.
func isArenaVisible(ecs *ecs.ECS) bool {
	state := GetOrCreateGame(ecs).State
	return state == cfg.StatePlaying || state == cfg.StatePaused
}

// DrawArena fills the play field and outlines its edge.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	if !isArenaVisible(ecs) {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, height, cfg.Arena.BackgroundColor, false)
	vector.StrokeRect(screen, 0, 0, width, height, cfg.Arena.BorderWidth, cfg.Arena.BorderColor, false)
}

// DrawEnemies renders every enemy as a filled square in its wave color,
// or in the hit flash color right after a wound.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	if !isArenaVisible(ecs) {
		return
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		r := EnemyRect(e)
		clr := components.Enemy.Get(e).Color
		if isFlashing(e) {
			clr = cfg.Arena.HitFlashColor
		}
		vector.FillRect(screen,
			float32(r.X), float32(r.Y),
			float32(r.W), float32(r.H),
			clr, false)
	})
}

// DrawAttackArea shows the strike radius on the frame the attack fires.
func DrawAttackArea(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPlaying(ecs) {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || !IsAttacking(playerEntry) {
		return
	}

	area := AttackArea(PlayerRect(playerEntry), GetOrCreateGame(ecs).Tuning.Combat.AttackRangeFactor)
	center := area.Center()
	radius := float32(area.W / 2)

	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), radius, cfg.Arena.AttackFillColor, true)
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), radius, 2, cfg.Arena.AttackOutlineColor, true)
}

// DrawPlayer renders the ship as a triangle pointing along its heading.
// While invulnerable the ship blinks.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	if !isArenaVisible(ecs) {
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	if player.Invulnerable && isBlinkHidden(player.InvulnTimer) {
		return
	}

	clr := GetOrCreateGame(ecs).Tuning.Player.Color.RGBA()
	drawShip(screen, player.Position, player.Heading, player.Size/2, clr)
}

// isBlinkHidden alternates visibility at cfg.Arena.InvulnBlinkRate.
func isBlinkHidden(remaining float64) bool {
	return int(remaining*cfg.Arena.InvulnBlinkRate*2)%2 == 1
}

func drawShip(screen *ebiten.Image, center components.Vector, heading, radius float64, clr color.RGBA) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	for i, angle := range []float64{heading, heading + shipWingAngle, heading - shipWingAngle} {
		rad := angle * math.Pi / 180
		shipVertices[i] = ebiten.Vertex{
			DstX:   float32(center.X + math.Cos(rad)*radius),
			DstY:   float32(center.Y + math.Sin(rad)*radius),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}

	screen.DrawTriangles(shipVertices, shipIndices, whiteSubImage, shipDrawOp)
}

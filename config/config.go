package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int

	// SpaceCellSize is the resolv cell size; it divides both screen dimensions.
	SpaceCellSize int
}

// MaxDeltaTime caps the measured frame time in seconds.
const MaxDeltaTime = 0.1

// ArenaConfig contains play field drawing values
type ArenaConfig struct {
	BackgroundColor color.RGBA
	BorderColor     color.RGBA
	BorderWidth     float32

	AttackFillColor    color.RGBA
	AttackOutlineColor color.RGBA

	// Blinks per second of the ship while invulnerable
	InvulnBlinkRate float64

	// Frames a wounded enemy is drawn in HitFlashColor
	HitFlashFrames int
	HitFlashColor  color.RGBA
}

// DebugConfig contains the collision overlay colors
type DebugConfig struct {
	Enabled     bool
	PlayerColor color.RGBA
	EnemyColor  color.RGBA
	OtherColor  color.RGBA
}

// HUDConfig contains in-game overlay values
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	TextColor     color.RGBA
	HealthColor   color.RGBA
	HealthBgColor color.RGBA
	PipSize       float32
	PipGap        float32
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string
	TitleY          float64
	HelpStartY      float64
	HelpLineHeight  float64
	HelpLines       []string
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string
}

// EndScreenConfig contains game over and victory screen configuration values
type EndScreenConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	HintColor       color.RGBA
	Title           string
	TitleY          float64
	ScoreY          float64
	HintY           float64
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Debug DebugConfig
var HUD HUDConfig
var Menu MenuConfig
var Pause PauseConfig
var GameOver EndScreenConfig
var Victory EndScreenConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray         = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	RayWhite     = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:         800,
		Height:        450,
		Title:         "Shipwave",
		TPS:           60,
		SpaceCellSize: 25,
	}

	Arena = ArenaConfig{
		BackgroundColor:    RayWhite,
		BorderColor:        Gray,
		BorderWidth:        2,
		AttackFillColor:    color.RGBA{R: 230, G: 41, B: 55, A: 77},
		AttackOutlineColor: color.RGBA{R: 230, G: 41, B: 55, A: 200},
		InvulnBlinkRate:    10,
		HitFlashFrames:     6,
		HitFlashColor:      White,
	}

	Debug = DebugConfig{
		Enabled:     false,
		PlayerColor: color.RGBA{R: 0, G: 0, B: 255, A: 255},
		EnemyColor:  color.RGBA{R: 255, G: 0, B: 0, A: 255},
		OtherColor:  color.RGBA{R: 0, G: 255, B: 255, A: 255},
	}

	HUD = HUDConfig{
		Margin:        10,
		LineHeight:    20,
		TextColor:     DarkGray,
		HealthColor:   color.RGBA{R: 40, G: 220, B: 40, A: 255},
		HealthBgColor: color.RGBA{R: 200, G: 200, B: 200, A: 255},
		PipSize:       12,
		PipGap:        4,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 24, B: 40, A: 255},
		TitleColor:      LightBlue,
		TextColor:       White,
		HintColor:       Gray,
		Title:           "SHIPWAVE",
		TitleY:          120,
		HelpStartY:      200,
		HelpLineHeight:  26,
		HelpLines: []string{
			"Arrows / WASD: steer and thrust",
			"Space: strike everything around the ship",
			"P / Esc: pause",
		},
	}

	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Press P or Esc to resume",
	}

	GameOver = EndScreenConfig{
		BackgroundColor: color.RGBA{R: 30, G: 10, B: 10, A: 255},
		TitleColor:      LightRed,
		TextColor:       White,
		HintColor:       Gray,
		Title:           "GAME OVER",
		TitleY:          150,
		ScoreY:          220,
		HintY:           320,
	}

	Victory = EndScreenConfig{
		BackgroundColor: color.RGBA{R: 10, G: 30, B: 16, A: 255},
		TitleColor:      LightGreen,
		TextColor:       White,
		HintColor:       Gray,
		Title:           "VICTORY",
		TitleY:          150,
		ScoreY:          220,
		HintY:           320,
	}
}

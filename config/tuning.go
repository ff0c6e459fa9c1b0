package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var tuningYAML []byte

// Color is an RGBA color written as "#RRGGBB" or "#RRGGBBAA" in tuning files.
type Color color.RGBA

// UnmarshalYAML decodes a hex color string.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// RGBA returns the color as an image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA(c)
}

// ParseHexColor parses "#RRGGBB" and "#RRGGBBAA".
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// EntityConfig is the immutable template an enemy wave is built from.
type EntityConfig struct {
	Size     float64 `yaml:"size"`
	SpeedMin float64 `yaml:"speedMin"`
	SpeedMax float64 `yaml:"speedMax"`
	Health   int     `yaml:"health"`
	Color    Color   `yaml:"color"`
}

// PlayerTuning contains the ship's movement and survivability values
type PlayerTuning struct {
	Size            float64 `yaml:"size"`
	Acceleration    float64 `yaml:"acceleration"`
	MaxSpeed        float64 `yaml:"maxSpeed"`
	Drag            float64 `yaml:"drag"`     // velocity multiplier applied every frame
	TurnRate        float64 `yaml:"turnRate"` // fraction of the heading error closed per frame
	Health          int     `yaml:"health"`
	Invulnerability float64 `yaml:"invulnerability"`
	Color           Color   `yaml:"color"`
}

// CombatTuning contains attack and spawn placement values
type CombatTuning struct {
	AttackRangeFactor float64 `yaml:"attackRangeFactor"` // attack half extent in player widths
	AttackDamage      int     `yaml:"attackDamage"`
	PointsPerHealth   int     `yaml:"pointsPerHealth"`
	SpawnSafeDistance float64 `yaml:"spawnSafeDistance"`
	SpawnAttempts     int     `yaml:"spawnAttempts"`
}

// ScenarioTuning contains wave progression values
type ScenarioTuning struct {
	MaxWaves              int     `yaml:"maxWaves"`
	EnemiesPerWave        int     `yaml:"enemiesPerWave"`
	EnemyHealthMultiplier float64 `yaml:"enemyHealthMultiplier"`
}

// Tuning is the full set of gameplay values consumed at startup and on wave changes.
type Tuning struct {
	Player   PlayerTuning   `yaml:"player"`
	Combat   CombatTuning   `yaml:"combat"`
	Scenario ScenarioTuning `yaml:"scenario"`
	Waves    []EntityConfig `yaml:"waves"`
}

// Wave returns the configuration for wave index i, falling back to the
// first entry when i is out of range, and to the built-in first wave when
// there are no entries at all.
func (t *Tuning) Wave(i int) EntityConfig {
	if len(t.Waves) == 0 {
		return DefaultTuning().Waves[0]
	}
	if i < 0 || i >= len(t.Waves) {
		return t.Waves[0]
	}
	return t.Waves[i]
}

// DefaultTuning returns the built-in values, identical to the embedded tuning.yaml.
func DefaultTuning() *Tuning {
	return &Tuning{
		Player: PlayerTuning{
			Size:            40,
			Acceleration:    0.35,
			MaxSpeed:        6,
			Drag:            0.98,
			TurnRate:        0.1,
			Health:          3,
			Invulnerability: 2.0,
			Color:           Color{R: 0, G: 121, B: 241, A: 255},
		},
		Combat: CombatTuning{
			AttackRangeFactor: 1.5,
			AttackDamage:      1,
			PointsPerHealth:   100,
			SpawnSafeDistance: 150,
			SpawnAttempts:     100,
		},
		Scenario: ScenarioTuning{
			MaxWaves:              5,
			EnemiesPerWave:        2,
			EnemyHealthMultiplier: 1.0,
		},
		Waves: []EntityConfig{
			{Size: 50, SpeedMin: 1.0, SpeedMax: 3.0, Health: 1, Color: Color{R: 230, G: 41, B: 55, A: 255}},
			{Size: 46, SpeedMin: 1.5, SpeedMax: 3.5, Health: 2, Color: Color{R: 190, G: 33, B: 55, A: 255}},
			{Size: 42, SpeedMin: 2.0, SpeedMax: 4.0, Health: 2, Color: Color{R: 255, G: 161, B: 0, A: 255}},
			{Size: 38, SpeedMin: 2.5, SpeedMax: 4.5, Health: 3, Color: Color{R: 200, G: 122, B: 255, A: 255}},
			{Size: 34, SpeedMin: 3.0, SpeedMax: 5.0, Health: 3, Color: Color{R: 135, G: 60, B: 190, A: 255}},
		},
	}
}

// LoadTuning parses the embedded tuning file.
func LoadTuning() (*Tuning, error) {
	t, err := ParseTuning(tuningYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded tuning: %w", err)
	}
	return t, nil
}

// ParseTuning decodes YAML on top of DefaultTuning, so omitted keys keep
// their built-in values, and validates the result.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning YAML: %w", err)
	}
	if t.Scenario.MaxWaves == 0 {
		t.Scenario.MaxWaves = len(t.Waves)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate reports the first out-of-range value, naming its field.
func (t *Tuning) Validate() error {
	p := t.Player
	if p.Size <= 0 {
		return fmt.Errorf("player.size must be positive")
	}
	if p.Health < 1 {
		return fmt.Errorf("player.health must be at least 1")
	}
	if p.Drag <= 0 || p.Drag > 1 {
		return fmt.Errorf("player.drag must be in (0, 1]")
	}
	if p.TurnRate <= 0 || p.TurnRate > 1 {
		return fmt.Errorf("player.turnRate must be in (0, 1]")
	}
	if p.Acceleration < 0 || p.MaxSpeed <= 0 {
		return fmt.Errorf("player.acceleration must be >= 0 and player.maxSpeed positive")
	}
	if p.Invulnerability < 0 {
		return fmt.Errorf("player.invulnerability cannot be negative")
	}

	c := t.Combat
	if c.AttackRangeFactor <= 0 {
		return fmt.Errorf("combat.attackRangeFactor must be positive")
	}
	if c.AttackDamage < 1 {
		return fmt.Errorf("combat.attackDamage must be at least 1")
	}
	if c.PointsPerHealth < 0 {
		return fmt.Errorf("combat.pointsPerHealth cannot be negative")
	}
	if c.SpawnSafeDistance < 0 {
		return fmt.Errorf("combat.spawnSafeDistance cannot be negative")
	}
	if c.SpawnAttempts < 1 {
		return fmt.Errorf("combat.spawnAttempts must be at least 1")
	}

	s := t.Scenario
	if s.MaxWaves < 1 {
		return fmt.Errorf("scenario.maxWaves must be at least 1")
	}
	if s.EnemiesPerWave < 1 {
		return fmt.Errorf("scenario.enemiesPerWave must be at least 1")
	}
	if s.EnemyHealthMultiplier <= 0 {
		return fmt.Errorf("scenario.enemyHealthMultiplier must be positive")
	}

	if len(t.Waves) == 0 {
		return fmt.Errorf("at least one wave is required")
	}
	for i, w := range t.Waves {
		if w.Size <= 0 {
			return fmt.Errorf("wave %d: size must be positive", i)
		}
		if w.Health < 1 {
			return fmt.Errorf("wave %d: health must be at least 1", i)
		}
		if w.SpeedMin <= 0 || w.SpeedMax < w.SpeedMin {
			return fmt.Errorf("wave %d: need 0 < speedMin <= speedMax", i)
		}
	}
	return nil
}

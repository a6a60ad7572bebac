// Package config provides configuration loading for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Fire models.
const (
	FireModelCooldown  = "cooldown"
	FireModelTimestamp = "timestamp"
)

// Damage formulas.
const (
	DamageAttack    = "attack"
	DamageMovePower = "move_power"
)

// Clock modes.
const (
	ClockFrame = "frame"
	ClockFixed = "fixed"
)

// Config holds all simulation parameters.
type Config struct {
	Field     FieldConfig     `yaml:"field"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Combat    CombatConfig    `yaml:"combat"`
	Clock     ClockConfig     `yaml:"clock"`
	Capacity  CapacityConfig  `yaml:"capacity"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Catalog   CatalogConfig   `yaml:"catalog"`
}

// FieldConfig describes the playing field and the single straight lane.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	LaneY  float64 `yaml:"lane_y"` // Enemies walk along y = LaneY
}

// SpawnConfig holds the fixed-period spawner settings.
type SpawnConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Interval float64 `yaml:"interval"` // seconds between spawns
}

// EnemyConfig holds baseline enemy stats.
type EnemyConfig struct {
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"` // units per second
	Size   float64 `yaml:"size"`  // display size only
}

// CombatConfig holds turret firing parameters.
type CombatConfig struct {
	FireRate      float64 `yaml:"fire_rate"` // seconds between shots
	ShotTTL       float64 `yaml:"shot_ttl"`
	FireModel     string  `yaml:"fire_model"`
	DamageFormula string  `yaml:"damage_formula"`
}

// ClockConfig selects how step deltas are produced.
type ClockConfig struct {
	Mode      string  `yaml:"mode"`
	FixedStep float64 `yaml:"fixed_step"`
	MaxDelta  float64 `yaml:"max_delta"`
}

// CapacityConfig caps the transient collections. Zero means unbounded.
type CapacityConfig struct {
	MaxEnemies int `yaml:"max_enemies"`
	MaxShots   int `yaml:"max_shots"`
}

// TelemetryConfig controls CSV statistics output.
type TelemetryConfig struct {
	OutputDir string  `yaml:"output_dir"` // empty disables output
	Window    float64 `yaml:"window"`     // seconds of game time per row
}

// CatalogConfig points at an optional kind definitions file.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are broken: %v", err))
	}
	return cfg
}

// Load reads embedded defaults, then overlays the file at path when given.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every value the simulation relies on.
func (c *Config) Validate() error {
	switch {
	case c.Field.Width <= 0:
		return fmt.Errorf("%w: field.width must be positive", ErrInvalidConfig)
	case c.Field.Height <= 0:
		return fmt.Errorf("%w: field.height must be positive", ErrInvalidConfig)
	case c.Spawn.Enabled && c.Spawn.Interval <= 0:
		return fmt.Errorf("%w: spawn.interval must be positive", ErrInvalidConfig)
	case c.Enemy.Health <= 0:
		return fmt.Errorf("%w: enemy.health must be positive", ErrInvalidConfig)
	case c.Enemy.Speed <= 0:
		return fmt.Errorf("%w: enemy.speed must be positive", ErrInvalidConfig)
	case c.Combat.FireRate <= 0:
		return fmt.Errorf("%w: combat.fire_rate must be positive", ErrInvalidConfig)
	case c.Combat.ShotTTL <= 0:
		return fmt.Errorf("%w: combat.shot_ttl must be positive", ErrInvalidConfig)
	case c.Combat.FireModel != FireModelCooldown && c.Combat.FireModel != FireModelTimestamp:
		return fmt.Errorf("%w: combat.fire_model %q", ErrInvalidConfig, c.Combat.FireModel)
	case c.Combat.DamageFormula != DamageAttack && c.Combat.DamageFormula != DamageMovePower:
		return fmt.Errorf("%w: combat.damage_formula %q", ErrInvalidConfig, c.Combat.DamageFormula)
	case c.Clock.Mode != ClockFrame && c.Clock.Mode != ClockFixed:
		return fmt.Errorf("%w: clock.mode %q", ErrInvalidConfig, c.Clock.Mode)
	case c.Clock.FixedStep <= 0:
		return fmt.Errorf("%w: clock.fixed_step must be positive", ErrInvalidConfig)
	case c.Clock.MaxDelta < 0:
		return fmt.Errorf("%w: clock.max_delta must not be negative", ErrInvalidConfig)
	case c.Capacity.MaxEnemies < 0 || c.Capacity.MaxShots < 0:
		return fmt.Errorf("%w: capacity limits must not be negative", ErrInvalidConfig)
	case c.Telemetry.Window <= 0:
		return fmt.Errorf("%w: telemetry.window must be positive", ErrInvalidConfig)
	}
	return nil
}

// WriteYAML saves the configuration as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Package config loads the gameplay tuning file. Only balance knobs live
// here; the bonus-mode timing constants are engine invariants and stay
// compiled into internal/modes.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the yaml-serializable tuning set.
type Config struct {
	// Scroll speed, px/sec, and its per-ms ramp while no lock freezes it.
	BaseSpeed float64 `yaml:"baseSpeed"`
	SpeedRamp float64 `yaml:"speedRamp"`
	MaxSpeed  float64 `yaml:"maxSpeed"`

	// Rider physics, px and px/sec.
	Gravity   float64 `yaml:"gravity"`
	TapSpeed  float64 `yaml:"tapSpeed"`
	FieldHalf float64 `yaml:"fieldHalf"` // playfield half-height around the midline

	// Connector resting length, px.
	ConnectorLength float64 `yaml:"connectorLength"`

	// Spawn cadence, ms between spawn decisions.
	ObstacleInterval float64 `yaml:"obstacleInterval"`
	ShardInterval    float64 `yaml:"shardInterval"`
	PickupInterval   float64 `yaml:"pickupInterval"`

	// Economy.
	ShardValue int `yaml:"shardValue"`

	// Hazard wave geometry during the lock, px and radians/px.
	WaveAmplitude float64 `yaml:"waveAmplitude"`
	WaveFrequency float64 `yaml:"waveFrequency"`
}

// Default returns the shipped tuning.
func Default() *Config {
	return &Config{
		BaseSpeed:        240,
		SpeedRamp:        0.002,
		MaxSpeed:         560,
		Gravity:          980,
		TapSpeed:         360,
		FieldHalf:        280,
		ConnectorLength:  80,
		ObstacleInterval: 1400,
		ShardInterval:    650,
		PickupInterval:   9000,
		ShardValue:       5,
		WaveAmplitude:    90,
		WaveFrequency:    0.018,
	}
}

// Load reads tuning from a yaml file, falling back to Default when the file
// does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tuning: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tuning %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects tuning the simulation cannot run on.
func (c *Config) Validate() error {
	if c.BaseSpeed <= 0 || c.MaxSpeed < c.BaseSpeed {
		return fmt.Errorf("speed range %v..%v invalid", c.BaseSpeed, c.MaxSpeed)
	}
	if c.SpeedRamp < 0 {
		return fmt.Errorf("negative speed ramp %v", c.SpeedRamp)
	}
	if c.ObstacleInterval <= 0 || c.ShardInterval <= 0 || c.PickupInterval <= 0 {
		return fmt.Errorf("spawn intervals must be positive")
	}
	if c.FieldHalf <= 0 || c.ConnectorLength <= 0 || c.ConnectorLength >= 2*c.FieldHalf {
		return fmt.Errorf("field geometry: half %v, connector %v", c.FieldHalf, c.ConnectorLength)
	}
	if c.ShardValue <= 0 {
		return fmt.Errorf("shard value %d must be positive", c.ShardValue)
	}
	if c.WaveAmplitude < 0 || c.WaveAmplitude > c.FieldHalf {
		return fmt.Errorf("wave amplitude %v outside field", c.WaveAmplitude)
	}
	return nil
}

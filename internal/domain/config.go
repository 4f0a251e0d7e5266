package domain

import (
	"fmt"
	"time"
)

// AppConfig holds settings loaded from .luxura.yaml.
type AppConfig struct {
	Catalog  string         `yaml:"catalog"  json:"catalog,omitempty"`
	Currency string         `yaml:"currency" json:"currency"`
	Rotation RotationConfig `yaml:"rotation" json:"rotation"`
}

// RotationConfig tunes the 360° spin animation.
type RotationConfig struct {
	StepDegrees int           `yaml:"step_degrees" json:"step_degrees"`
	Interval    time.Duration `yaml:"interval"     json:"interval"`
}

const (
	DefaultCurrency         = "$"
	DefaultRotationStep     = 5
	DefaultRotationInterval = 30 * time.Millisecond
)

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() AppConfig {
	return AppConfig{
		Currency: DefaultCurrency,
		Rotation: RotationConfig{
			StepDegrees: DefaultRotationStep,
			Interval:    DefaultRotationInterval,
		},
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig. Explicit values
// always win.
func (c AppConfig) WithDefaults() AppConfig {
	d := DefaultConfig()
	if c.Currency == "" {
		c.Currency = d.Currency
	}
	if c.Rotation.StepDegrees == 0 {
		c.Rotation.StepDegrees = d.Rotation.StepDegrees
	}
	if c.Rotation.Interval == 0 {
		c.Rotation.Interval = d.Rotation.Interval
	}
	return c
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c AppConfig) Validate() error {
	// 1. currency symbol must be present
	if c.Currency == "" {
		return fmt.Errorf("currency must not be empty")
	}

	// 2. rotation step must land exactly on 360
	step := c.Rotation.StepDegrees
	if step <= 0 || step > 360 {
		return fmt.Errorf("rotation.step_degrees = %d (must be between 1 and 360)", step)
	}
	if 360%step != 0 {
		return fmt.Errorf("rotation.step_degrees = %d (must divide 360)", step)
	}

	// 3. interval must be positive
	if c.Rotation.Interval <= 0 {
		return fmt.Errorf("rotation.interval = %s (must be positive)", c.Rotation.Interval)
	}

	return nil
}

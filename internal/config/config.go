package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/slosh/internal/fluid"
)

const (
	DefaultDt          = 0.2
	DefaultWaveSpeedSq = 0.5
	DefaultDamping     = 0.01
	DefaultLevel       = 0.5
	DefaultTilt        = 0.1
	DefaultSleepMs     = 50
)

// ErrInvalidParam is wrapped by every ValidationError.
var ErrInvalidParam = errors.New("config: parameter out of range")

// ValidationError names the offending parameter.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be %s, got %v", e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidParam }

// Params is the full parameter set of a run.
type Params struct {
	Dt          float64 `yaml:"dt"`
	WaveSpeedSq float64 `yaml:"speed_sq"`
	Damping     float64 `yaml:"damping"`
	Level       float64 `yaml:"level"`
	Tilt        float64 `yaml:"tilt"`
	SleepMs     int     `yaml:"sleep_ms"`
}

func DefaultParams() *Params {
	return &Params{
		Dt:          DefaultDt,
		WaveSpeedSq: DefaultWaveSpeedSq,
		Damping:     DefaultDamping,
		Level:       DefaultLevel,
		Tilt:        DefaultTilt,
		SleepMs:     DefaultSleepMs,
	}
}

// Validate checks every parameter against its domain and returns the first
// violation.
func (p *Params) Validate() error {
	switch {
	case !(p.Dt > 0) || math.IsInf(p.Dt, 1):
		return &ValidationError{"dt", p.Dt, "finite and > 0"}
	case !(p.WaveSpeedSq > 0) || math.IsInf(p.WaveSpeedSq, 1):
		return &ValidationError{"speed_sq", p.WaveSpeedSq, "finite and > 0"}
	case !(p.Damping >= 0) || math.IsInf(p.Damping, 1):
		return &ValidationError{"damping", p.Damping, "finite and >= 0"}
	case !(p.Level >= 0 && p.Level <= 1):
		return &ValidationError{"level", p.Level, "in [0, 1]"}
	case !(p.Tilt >= 0 && p.Tilt <= 1):
		return &ValidationError{"tilt", p.Tilt, "in [0, 1]"}
	case p.SleepMs < 0:
		return &ValidationError{"sleep", p.SleepMs, ">= 0"}
	}
	return nil
}

func (p *Params) Coefficients() fluid.Coefficients {
	return fluid.Coefficients{Dt: p.Dt, WaveSpeedSq: p.WaveSpeedSq, Damping: p.Damping}
}

func (p *Params) Stability() fluid.Stability {
	return fluid.CheckStability(p.WaveSpeedSq, p.Dt)
}

func (p *Params) FrameDelay() time.Duration {
	return time.Duration(p.SleepMs) * time.Millisecond
}

func (p *Params) String() string {
	return fmt.Sprintf("DT=%.3f, SpeedSq=%.2f, Damping=%.3f, Level=%.2f, Tilt=%.2f, Sleep=%dms",
		p.Dt, p.WaveSpeedSq, p.Damping, p.Level, p.Tilt, p.SleepMs)
}

// Load reads a YAML parameter file on top of base, or of the defaults when
// base is nil. Fields absent from the file keep their base value.
func Load(path string, base *Params) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	p := DefaultParams()
	if base != nil {
		*p = *base
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return p, nil
}

func Save(path string, p *Params) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

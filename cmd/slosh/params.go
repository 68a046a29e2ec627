package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/slosh/internal/config"
)

// resolveParams layers defaults, the preset, the config file and explicitly
// set flags, in that order, and validates the result.
func resolveParams(cmd *cobra.Command) (*config.Params, error) {
	p := config.DefaultParams()

	if preset != "" {
		pp := config.GetPreset(preset)
		if pp == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		p = pp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile, p)
		if err != nil {
			return nil, err
		}
		p = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		p.Dt = dt
	}
	if flags.Changed("speed_sq") {
		p.WaveSpeedSq = speedSq
	}
	if flags.Changed("damping") {
		p.Damping = damping
	}
	if flags.Changed("level") {
		p.Level = level
	}
	if flags.Changed("tilt") {
		p.Tilt = tilt
	}
	if flags.Changed("sleep") {
		p.SleepMs = sleepMs
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

package config

import "sort"

var Presets = map[string]*Params{
	"calm": {
		Dt: 0.2, WaveSpeedSq: 0.3, Damping: 0.05, Level: 0.5, Tilt: 0.05, SleepMs: 50,
	},
	"slosh": {
		Dt: 0.2, WaveSpeedSq: 0.5, Damping: 0.01, Level: 0.5, Tilt: 0.4, SleepMs: 40,
	},
	"ripple": {
		Dt: 0.2, WaveSpeedSq: 0.5, Damping: 0.005, Level: 0.45, Tilt: 0, SleepMs: 50,
	},
	"storm": {
		Dt: 0.3, WaveSpeedSq: 1.0, Damping: 0, Level: 0.6, Tilt: 0.8, SleepMs: 30,
	},
	"still": {
		Dt: 0.2, WaveSpeedSq: 0.5, Damping: 0.2, Level: 0.3, Tilt: 0.02, SleepMs: 100,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Params {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

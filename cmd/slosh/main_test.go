package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/slosh/internal/config"
	"github.com/san-kum/slosh/internal/term"
)

func execute(t *testing.T, geo term.Geometry, args ...string) (string, string, error) {
	t.Helper()
	prev := geometry
	geometry = geo
	t.Cleanup(func() { geometry = prev })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

var fixed = term.FixedGeometry{Width: 30, Height: 12}

func TestHelp(t *testing.T) {
	out, _, err := execute(t, fixed, "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, flag := range []string{"--dt", "--speed_sq", "--damping", "--level", "--tilt", "--sleep"} {
		if !strings.Contains(out, flag) {
			t.Errorf("usage missing %s", flag)
		}
	}
}

func TestInvalidParams(t *testing.T) {
	tests := [][]string{
		{"--dt", "0"},
		{"--dt", "inf"},
		{"--speed_sq", "-1"},
		{"--damping", "-0.5"},
		{"--level", "1.5"},
		{"--tilt", "-0.1"},
		{"--sleep", "-10"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			out, errOut, err := execute(t, fixed, append(args, "--frames", "1", "--pause", "0")...)
			if !errors.Is(err, config.ErrInvalidParam) {
				t.Fatalf("expected ErrInvalidParam, got %v", err)
			}
			if !strings.Contains(out+errOut, "Usage:") {
				t.Error("expected usage text on configuration error")
			}
			if strings.Contains(out, "Terminal:") {
				t.Error("simulation must not start on configuration error")
			}
		})
	}
}

func TestUnknownFlag(t *testing.T) {
	if _, _, err := execute(t, fixed, "--viscosity", "3"); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestRunFrames(t *testing.T) {
	out, errOut, err := execute(t, fixed, "--frames", "5", "--pause", "0", "--sleep", "0")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "Terminal: 30x12.") {
		t.Errorf("expected banner, got %q", out)
	}
	if !strings.Contains(out, "Parameters: DT=0.200, SpeedSq=0.50, Damping=0.010, Level=0.50, Tilt=0.10, Sleep=0ms") {
		t.Errorf("expected parameter line, got %q", out)
	}
	if n := strings.Count(out, "\033[H\033[J"); n != 5 {
		t.Errorf("expected 5 frames, got %d", n)
	}
	if !strings.Contains(out, strings.Repeat("X", 30)+"\n") {
		t.Error("expected wall row in output")
	}
	if errOut != "" {
		t.Errorf("expected no warnings, got %q", errOut)
	}
}

func TestRunSmallTerminal(t *testing.T) {
	out, errOut, err := execute(t, term.FixedGeometry{Width: 5, Height: 3}, "--frames", "1", "--pause", "0")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(errOut, "Terminal too small") {
		t.Errorf("expected size warning, got %q", errOut)
	}
	if !strings.Contains(out, "Terminal: 20x10.") {
		t.Errorf("expected fallback size, got %q", out)
	}
}

func TestRunUnstableWarns(t *testing.T) {
	out, errOut, err := execute(t, fixed, "--dt", "2", "--frames", "3", "--pause", "0", "--sleep", "0")
	if err != nil {
		t.Fatalf("unstable parameters must still run: %v", err)
	}
	if !strings.Contains(errOut, "might be unstable") {
		t.Errorf("expected stability warning, got %q", errOut)
	}
	if !strings.Contains(out, "POTENTIAL INSTABILITY") {
		t.Errorf("expected banner warning, got %q", out)
	}
}

func TestRunUnknownTheme(t *testing.T) {
	if _, _, err := execute(t, fixed, "--theme", "neon", "--pause", "0"); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestCheck(t *testing.T) {
	out, _, err := execute(t, fixed, "check")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "stability: stable") {
		t.Errorf("expected stable, got %q", out)
	}

	out, _, err = execute(t, fixed, "check", "--speed_sq", "1", "--dt", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "potentially unstable") {
		t.Errorf("expected unstable, got %q", out)
	}
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, fixed, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("missing preset %s", name)
		}
	}

	out, _, err = execute(t, fixed, "presets", "--yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "speed_sq:") {
		t.Errorf("expected yaml, got %q", out)
	}
}

func TestParamPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	if err := os.WriteFile(path, []byte("damping: 0.25\ntilt: 0.6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, fixed, "check", "--preset", "calm", "--config", path, "--tilt", "0.9")
	if err != nil {
		t.Fatal(err)
	}
	calm := config.GetPreset("calm")
	want := config.Params{Dt: calm.Dt, WaveSpeedSq: calm.WaveSpeedSq, Damping: 0.25, Level: calm.Level, Tilt: 0.9, SleepMs: calm.SleepMs}
	if !strings.Contains(out, want.String()) {
		t.Errorf("expected %q in %q", want.String(), out)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, _, err := execute(t, fixed, "check", "--preset", "tsunami"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestProbe(t *testing.T) {
	out, _, err := execute(t, fixed, "probe", "--width", "20", "--height", "8", "--steps", "20")
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if !strings.Contains(out, "probe: 20x8, 20 steps") {
		t.Errorf("unexpected header in %q", out)
	}
	if !strings.Contains(out, "wave energy") || !strings.Contains(out, "mean level") {
		t.Error("expected plots")
	}
	if !strings.HasSuffix(out, strings.Repeat("X", 20)+"\n") {
		t.Error("expected final frame at the end")
	}
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, fixed, "compare", "calm", "storm", "--steps", "10", "--width", "16", "--height", "8")
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !strings.Contains(out, "PRESET") || !strings.Contains(out, "MEAN ENERGY") || !strings.Contains(out, "calm") || !strings.Contains(out, "storm") {
		t.Errorf("unexpected table %q", out)
	}

	if _, _, err := execute(t, fixed, "compare", "tsunami"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestProbeReportsPeriod(t *testing.T) {
	out, _, err := execute(t, fixed, "probe", "--preset", "slosh", "--width", "24", "--height", "8", "--steps", "256")
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if !strings.Contains(out, "sloshing period: ") {
		t.Errorf("expected period line in %q", out)
	}
}

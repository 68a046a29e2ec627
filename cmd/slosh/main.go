package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/slosh/internal/analysis"
	"github.com/san-kum/slosh/internal/config"
	"github.com/san-kum/slosh/internal/metrics"
	"github.com/san-kum/slosh/internal/render"
	"github.com/san-kum/slosh/internal/sim"
	"github.com/san-kum/slosh/internal/term"
	"github.com/san-kum/slosh/internal/viz"
)

var (
	dt          float64
	speedSq     float64
	damping     float64
	level       float64
	tilt        float64
	sleepMs     int
	frames      int
	configFile  string
	preset      string
	theme       string
	tuiMode     bool
	pause       time.Duration
	probeWidth  int
	probeHeight int
	probeSteps  int
	presetsYAML bool

	// geometry is swapped out by tests.
	geometry term.Geometry = term.TerminalGeometry{File: os.Stdout}

	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
)

// main runs the root command with a context cancelled on SIGINT/SIGTERM and
// exits with status 1 on any configuration or runtime error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "slosh",
		Short: "ASCII fluid sloshing simulation (heightfield wave method)",
		Long: "ASCII fluid sloshing simulation (heightfield wave method).\n" +
			"Stability often requires (speed_sq * dt^2) <= 0.5.",
		Args: cobra.NoArgs,
		RunE: runSlosh,
	}

	pf := rootCmd.PersistentFlags()
	pf.Float64Var(&dt, "dt", config.DefaultDt, "simulation time step (> 0)")
	pf.Float64Var(&speedSq, "speed_sq", config.DefaultWaveSpeedSq, "wave speed squared factor (> 0)")
	pf.Float64Var(&damping, "damping", config.DefaultDamping, "damping factor (>= 0)")
	pf.Float64Var(&level, "level", config.DefaultLevel, "initial water level (0.0-1.0)")
	pf.Float64Var(&tilt, "tilt", config.DefaultTilt, "initial surface tilt (0.0-1.0)")
	pf.IntVar(&sleepMs, "sleep", config.DefaultSleepMs, "sleep time per frame in ms (>= 0)")
	pf.StringVar(&configFile, "config", "", "parameter file (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")

	rootCmd.Flags().IntVar(&frames, "frames", 0, "stop after this many frames (0 runs until interrupted)")
	rootCmd.Flags().StringVar(&theme, "theme", render.ThemePlain.Name, "glyph colours: plain, ocean, retro")
	rootCmd.Flags().BoolVar(&tuiMode, "tui", false, "full-screen view with energy chart")
	rootCmd.Flags().DurationVar(&pause, "pause", 3*time.Second, "pause after printing parameters")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "report the stability of the parameters",
		Args:  cobra.NoArgs,
		RunE:  checkParams,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}
	presetsCmd.Flags().BoolVar(&presetsYAML, "yaml", false, "print presets as yaml")

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "run headless and plot energy and mean level",
		Args:  cobra.NoArgs,
		RunE:  probeRun,
	}
	compareCmd := &cobra.Command{
		Use:   "compare [preset]...",
		Short: "run presets side by side and tabulate their metrics",
		RunE:  comparePresets,
	}
	for _, c := range []*cobra.Command{probeCmd, compareCmd} {
		c.Flags().IntVar(&probeWidth, "width", 60, "grid width")
		c.Flags().IntVar(&probeHeight, "height", 20, "grid height")
		c.Flags().IntVar(&probeSteps, "steps", 300, "number of steps")
	}

	rootCmd.AddCommand(checkCmd, presetsCmd, probeCmd, compareCmd)
	return rootCmd
}

func runSlosh(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	th, err := render.GetTheme(theme)
	if err != nil {
		return err
	}
	if frames < 0 {
		return fmt.Errorf("frames must be >= 0, got %d", frames)
	}
	cmd.SilenceUsage = true

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	st := p.Stability()
	if st.Unstable {
		warn(errOut, "Warning: "+st.Advice())
	}

	w, h, degraded, err := term.Resolve(geometry)
	if err != nil {
		return err
	}
	if degraded {
		warn(errOut, fmt.Sprintf("Terminal too small. Minimum %dx%d required. Using fallback %dx%d.",
			term.MinWidth, term.MinHeight, w, h))
	}
	if tuiMode {
		w, h, _ = term.FitSize(w, h-viz.ReservedRows)
	}

	fmt.Fprintf(out, "Terminal: %dx%d. Starting fluid sloshing simulation...\n", w, h)
	fmt.Fprintf(out, "Parameters: %s\n", p)
	if st.Unstable {
		fmt.Fprintln(out, "WARNING: POTENTIAL INSTABILITY (see details above)")
	}

	ctx := cmd.Context()
	if err := (term.SleepDelay{}).Wait(ctx, pause); err != nil {
		return nil
	}

	s, err := sim.New(p, w, h)
	if err != nil {
		return err
	}
	painter := render.NewPainter(th)

	if tuiMode {
		return viz.Run(ctx, s, painter, frames)
	}

	screen := term.NewScreenPresenter(out)
	defer screen.Close()

	r := sim.NewRunner(s, painter, screen, term.SleepDelay{}, frames)
	if _, err := r.Run(ctx); err != nil {
		return err
	}
	return nil
}

func checkParams(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	st := p.Stability()
	fmt.Fprintf(out, "parameters: %s\n", p)
	fmt.Fprintf(out, "stability: %s\n", st)
	if st.Unstable {
		warn(out, st.Advice())
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if presetsYAML {
		data, err := yaml.Marshal(config.Presets)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		fmt.Fprintf(out, "  %-8s %s\n", name, config.GetPreset(name))
	}
	return nil
}

// lastFrame keeps only the most recent frame.
type lastFrame struct {
	frame string
}

func (l *lastFrame) Present(frame string) error {
	l.frame = frame
	return nil
}

func probeRun(cmd *cobra.Command, args []string) error {
	p, err := resolveParams(cmd)
	if err != nil {
		return err
	}
	if probeSteps < 1 {
		return fmt.Errorf("steps must be >= 1, got %d", probeSteps)
	}
	cmd.SilenceUsage = true

	s, err := sim.New(p, probeWidth, probeHeight)
	if err != nil {
		return err
	}

	series := metrics.NewSeries(p.WaveSpeedSq, 0)
	clamp := metrics.NewClamping()
	shown := &lastFrame{}
	r := sim.NewRunner(s, render.NewPainter(render.ThemePlain), shown, term.NopDelay{}, probeSteps)
	r.AddObserver(series)
	r.AddMetric(clamp)

	result, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "probe: %dx%d, %d steps, t=%.1f\n", probeWidth, probeHeight, result.Frames, result.Time)
	fmt.Fprintf(out, "parameters: %s\n", p)
	fmt.Fprintf(out, "stability: %s\n\n", p.Stability())

	if len(series.Energy) > 1 {
		fmt.Fprintln(out, asciigraph.Plot(series.Energy,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("wave energy"),
		))
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(series.Level,
			asciigraph.Height(6),
			asciigraph.Width(80),
			asciigraph.Caption("mean level"),
		))
		fmt.Fprintln(out)
	}
	if period, ok := analysis.DominantPeriod(series.Imbalance, p.Dt); ok {
		fmt.Fprintf(out, "sloshing period: %.2f (%.1f frames)\n", period, period/p.Dt)
	} else {
		fmt.Fprintln(out, "sloshing period: none detected")
	}
	fmt.Fprintf(out, "clamped frames: %.1f%% (peak %d cells)\n\n", 100*result.Metrics[clamp.Name()], clamp.Peak())
	fmt.Fprint(out, shown.frame)
	return nil
}

func comparePresets(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = config.ListPresets()
	}
	params := make([]*config.Params, 0, len(names))
	for _, name := range names {
		p := config.GetPreset(name)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		params = append(params, p)
	}
	cmd.SilenceUsage = true

	e := sim.NewEnsemble(probeWidth, probeHeight, probeSteps, func(p *config.Params) []sim.Metric {
		return []sim.Metric{metrics.NewEnergy(p.WaveSpeedSq), metrics.NewLevel(), metrics.NewClamping()}
	})
	results, err := e.Run(cmd.Context(), params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing %d presets on %dx%d for %d steps\n\n", len(names), probeWidth, probeHeight, probeSteps)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTABILITY\tMETRIC\tMEAN ENERGY\tMEAN LEVEL\tCLAMPED")
	for i, name := range names {
		st := params[i].Stability()
		class := "stable"
		if st.Unstable {
			class = "unstable"
		}
		r := results[i].Metrics
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.4f\t%.3f\t%.1f%%\n",
			name, class, st.Metric, r["energy"], r["mean_level"], 100*r["clamped_frames"])
	}
	return w.Flush()
}

func warn(w io.Writer, msg string) {
	fmt.Fprintln(w, warnStyle.Render(msg))
}

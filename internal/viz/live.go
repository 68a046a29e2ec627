package viz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/slosh/internal/metrics"
	"github.com/san-kum/slosh/internal/sim"
)

const (
	historyCapacity = 120

	// ReservedRows is the number of terminal rows taken by the header,
	// stats line, energy chart and help line.
	ReservedRows = 9
)

type TickMsg time.Time

// Model steps the simulation on every tick and shows the latest frame.
type Model struct {
	sim       *sim.Simulation
	composer  sim.Composer
	series    *metrics.Series
	delay     time.Duration
	maxFrames int
	frame     string
	clamped   int
	err       error
}

func NewModel(s *sim.Simulation, c sim.Composer, maxFrames int) Model {
	p := s.Params()
	delay := p.FrameDelay()
	if delay <= 0 {
		delay = time.Millisecond
	}
	return Model{
		sim:       s,
		composer:  c,
		series:    metrics.NewSeries(p.WaveSpeedSq, historyCapacity),
		delay:     delay,
		maxFrames: maxFrames,
		frame:     c.Paint(s.Grid()),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case TickMsg:
		f, err := m.sim.Step()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.series.OnFrame(f)
		m.clamped = f.Clamped
		m.frame = m.composer.Paint(f.Grid)
		if m.maxFrames > 0 && f.Index >= m.maxFrames {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	p := m.sim.Params()
	var s strings.Builder
	s.WriteString(headerStyle.Render("SLOSH") + "  " + valueStyle.Render(p.String()) + "\n")
	if st := p.Stability(); st.Unstable {
		s.WriteString(warnStyle.Render("WARNING: POTENTIAL INSTABILITY ("+st.String()+")") + "\n")
	}
	s.WriteString(m.frame)

	s.WriteString(labelStyle.Render("frame") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Frames())))
	s.WriteString("  " + labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.1f", m.sim.Time())))
	if n := len(m.series.Level); n > 0 {
		s.WriteString("  " + labelStyle.Render("level") + valueStyle.Render(fmt.Sprintf("%.3f", m.series.Level[n-1])))
	}
	s.WriteString("  " + labelStyle.Render("clamped") + valueStyle.Render(fmt.Sprintf("%d", m.clamped)) + "\n")

	if len(m.series.Energy) > 1 {
		chart := asciigraph.Plot(m.series.Energy, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString(helpStyle.Render("q: quit"))
	return s.String()
}

// Err is the step error that ended the program, if any.
func (m Model) Err() error { return m.err }

// Run shows the simulation full-screen until the user quits, ctx is
// cancelled or maxFrames frames have been shown. The simulation is closed
// on return.
func Run(ctx context.Context, s *sim.Simulation, c sim.Composer, maxFrames int) error {
	defer s.Close()

	p := tea.NewProgram(NewModel(s, c, maxFrames), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}

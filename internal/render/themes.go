package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/slosh/internal/fluid"
)

// Theme colours each class. A theme without colours renders raw glyphs.
type Theme struct {
	Name   string
	Colors map[Class]lipgloss.Color
}

var (
	ThemePlain = Theme{Name: "plain"}

	ThemeOcean = Theme{
		Name: "ocean",
		Colors: map[Class]lipgloss.Color{
			Shallow: lipgloss.Color("#a8e6ff"),
			Low:     lipgloss.Color("#6ccff6"),
			Mid:     lipgloss.Color("#2fa8e0"),
			MidHigh: lipgloss.Color("#1a7fc4"),
			Full:    lipgloss.Color("#0d5aa7"),
			Deep:    lipgloss.Color("#06357a"),
			Wall:    lipgloss.Color("#666666"),
		},
	}

	ThemeRetro = Theme{
		Name: "retro",
		Colors: map[Class]lipgloss.Color{
			Shallow: lipgloss.Color("#004400"),
			Low:     lipgloss.Color("#006600"),
			Mid:     lipgloss.Color("#009900"),
			MidHigh: lipgloss.Color("#00cc00"),
			Full:    lipgloss.Color("#00ff00"),
			Deep:    lipgloss.Color("#88ff88"),
			Wall:    lipgloss.Color("#005500"),
		},
	}
)

var themes = map[string]Theme{
	ThemePlain.Name: ThemePlain,
	ThemeOcean.Name: ThemeOcean,
	ThemeRetro.Name: ThemeRetro,
}

// ThemeNames returns the registered theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GetTheme looks up a theme by name.
func GetTheme(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}
	return t, nil
}

// Painter renders frames with a theme. Styles are built once per class.
type Painter struct {
	theme  Theme
	styles map[Class]lipgloss.Style
}

func NewPainter(t Theme) *Painter {
	p := &Painter{theme: t, styles: make(map[Class]lipgloss.Style, len(t.Colors))}
	for class, color := range t.Colors {
		p.styles[class] = lipgloss.NewStyle().Foreground(color)
	}
	return p
}

func (p *Painter) Theme() Theme { return p.theme }

// Paint composes g into a single buffer. Runs of equal class share one
// styled segment to keep escape sequences down.
func (p *Painter) Paint(g *fluid.Grid) string {
	if len(p.styles) == 0 {
		return Frame(g)
	}
	var sb strings.Builder
	run := make([]byte, 0, g.Width())
	for r := 0; r < g.Height(); r++ {
		run = run[:0]
		prev := Class(-1)
		for c := 0; c < g.Width(); c++ {
			class := Classify(g, r, c)
			if class != prev && len(run) > 0 {
				sb.WriteString(p.segment(prev, run))
				run = run[:0]
			}
			prev = class
			run = append(run, class.Glyph())
		}
		if len(run) > 0 {
			sb.WriteString(p.segment(prev, run))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (p *Painter) segment(c Class, run []byte) string {
	st, ok := p.styles[c]
	if !ok {
		return string(run)
	}
	return st.Render(string(run))
}

// Package term holds the terminal collaborators of the simulation: screen
// geometry, frame presentation and frame pacing.
package term

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	xterm "github.com/charmbracelet/x/term"
)

const (
	clearScreen = "\033[H\033[J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	DefaultWidth  = 80
	DefaultHeight = 24

	MinWidth       = 10
	MinHeight      = 5
	FallbackWidth  = 20
	FallbackHeight = 10
)

// Geometry reports the drawable size in character cells.
type Geometry interface {
	Size() (width, height int, err error)
}

// Presenter shows a composed frame, replacing the previous one.
type Presenter interface {
	Present(frame string) error
}

// Delay blocks for d or until ctx is done.
type Delay interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TerminalGeometry queries the terminal attached to File. One row is kept
// free for the prompt. Failures fall back to 80x24.
type TerminalGeometry struct {
	File *os.File
}

func (t TerminalGeometry) Size() (int, int, error) {
	f := t.File
	if f == nil {
		f = os.Stdout
	}
	w, h, err := xterm.GetSize(f.Fd())
	if err != nil || w <= 0 || h <= 1 {
		return DefaultWidth, DefaultHeight, nil
	}
	return w, h - 1, nil
}

// FitSize enforces the minimum usable size, replacing each dimension that
// is too small with its fallback. degraded reports whether anything was
// replaced.
func FitSize(width, height int) (w, h int, degraded bool) {
	w, h = width, height
	if w < MinWidth || h < MinHeight {
		degraded = true
		if w < MinWidth {
			w = FallbackWidth
		}
		if h < MinHeight {
			h = FallbackHeight
		}
	}
	return w, h, degraded
}

// ScreenPresenter clears the screen and writes each frame in a single
// write. The cursor is hidden while frames are shown.
type ScreenPresenter struct {
	w      io.Writer
	buf    []byte
	hidden bool
}

func NewScreenPresenter(w io.Writer) *ScreenPresenter {
	return &ScreenPresenter{w: w}
}

func (p *ScreenPresenter) Present(frame string) error {
	p.buf = p.buf[:0]
	if !p.hidden {
		p.buf = append(p.buf, hideCursor...)
		p.hidden = true
	}
	p.buf = append(p.buf, clearScreen...)
	p.buf = append(p.buf, frame...)
	if _, err := p.w.Write(p.buf); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// Close restores the cursor.
func (p *ScreenPresenter) Close() error {
	if !p.hidden {
		return nil
	}
	p.hidden = false
	_, err := io.WriteString(p.w, showCursor)
	return err
}

// SleepDelay waits on a timer and returns early with ctx.Err() when
// cancelled.
type SleepDelay struct{}

func (SleepDelay) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Resolve asks geo for its size and applies FitSize.
func Resolve(geo Geometry) (w, h int, degraded bool, err error) {
	w, h, err = geo.Size()
	if err != nil {
		return 0, 0, false, fmt.Errorf("terminal size: %w", err)
	}
	w, h, degraded = FitSize(w, h)
	return w, h, degraded, nil
}

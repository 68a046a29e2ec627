package term

import (
	"context"
	"time"
)

// FixedGeometry always reports the same size.
type FixedGeometry struct {
	Width, Height int
}

func (g FixedGeometry) Size() (int, int, error) { return g.Width, g.Height, nil }

// NopDelay returns immediately unless ctx is already done.
type NopDelay struct{}

func (NopDelay) Wait(ctx context.Context, _ time.Duration) error { return ctx.Err() }

// BufferPresenter records frames instead of drawing them.
type BufferPresenter struct {
	Frames []string
	Err    error
}

func (p *BufferPresenter) Present(frame string) error {
	if p.Err != nil {
		return p.Err
	}
	p.Frames = append(p.Frames, frame)
	return nil
}

func (p *BufferPresenter) Last() string {
	if len(p.Frames) == 0 {
		return ""
	}
	return p.Frames[len(p.Frames)-1]
}

package engine

import (
	"time"

	"github.com/lixenwraith/termcast/input"
	"github.com/lixenwraith/termcast/render"
)

// stepClock advances by step on every reading
type stepClock struct {
	now  time.Time
	step time.Duration
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), step: step}
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// scriptSource returns one batch per drain, then err once batches run out
type scriptSource struct {
	batches [][]input.Event
	err     error
	drains  int
}

func (s *scriptSource) Drain(dst []input.Event) ([]input.Event, error) {
	s.drains++
	dst = dst[:0]
	if len(s.batches) == 0 {
		return dst, s.err
	}
	dst = append(dst, s.batches[0]...)
	s.batches = s.batches[1:]
	if len(s.batches) == 0 {
		return dst, s.err
	}
	return dst, nil
}

// recordDisplay keeps a text copy of every presented frame
type recordDisplay struct {
	frames []string
	width  int
	height int
	err    error
}

func (d *recordDisplay) Present(s *render.Screen) error {
	if d.err != nil {
		return d.err
	}
	d.width, d.height = s.Width(), s.Height()
	d.frames = append(d.frames, s.String())
	return nil
}

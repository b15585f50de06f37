package display

import (
	"io"

	"github.com/lixenwraith/termcast/render"
)

// ANSI presents frames as raw text to a terminal writer
type ANSI struct {
	w io.Writer
}

// NewANSI wraps w, which must already be in the alternate screen with auto-wrap off
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: w}
}

// Present writes s in one call
func (a *ANSI) Present(s *render.Screen) error {
	return s.Flush(a.w)
}

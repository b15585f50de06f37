package terminal

import (
	"io"
	"os"
	"sync"
)

// Terminal provides low-level terminal access for a full-frame renderer
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor, disables auto-wrap
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns the dimensions captured at Init
	Size() (width, height int)

	// Write sends raw bytes to the terminal as given
	Write(p []byte) (int, error)

	// PollEvent blocks until next input event
	PollEvent() Event
}

// termImpl implements Terminal using the Backend interface
type termImpl struct {
	backend Backend
	input   *inputReader

	width  int
	height int

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal on stdin/stdout
func New() Terminal {
	return newTerminal(newBackend())
}

func newTerminal(b Backend) *termImpl {
	return &termImpl{backend: b}
}

// Init enters raw mode and sets up the screen
func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.width, t.height = t.backend.Size()
	t.input = newInputReader(t.backend)

	t.writeRaw(csiAltScreenEnter)
	t.writeRaw(csiCursorHide)
	t.writeRaw(csiAutoWrapOff)
	t.writeRaw(csiClear)

	t.input.start()

	t.initialized = true
	return nil
}

// Fini clears the screen and restores the terminal
func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}

	if t.input != nil {
		t.input.stop()
	}

	t.writeRaw(csiClear)
	t.writeRaw(csiCursorShow)
	t.writeRaw(csiAltScreenExit)
	// Re-enable auto-wrap after leaving the alt screen so the main buffer has it
	t.writeRaw(csiAutoWrapOn)
	t.writeRaw(csiSGR0)

	t.backend.Fini()
	t.finalized = true
}

// Size returns the dimensions captured at Init
func (t *termImpl) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.initialized {
		return t.backend.Size()
	}
	return t.width, t.height
}

// Write passes p to the backend in one call
func (t *termImpl) Write(p []byte) (int, error) {
	return t.backend.Write(p)
}

// PollEvent blocks until the next input event; EventClosed once the reader is gone
func (t *termImpl) PollEvent() Event {
	t.mu.Lock()
	in := t.input
	t.mu.Unlock()
	if in == nil {
		return Event{Type: EventClosed}
	}

	select {
	case ev := <-in.events():
		return ev
	case <-in.doneCh:
		// Reader exited; deliver anything it queued first
		select {
		case ev := <-in.events():
			return ev
		default:
			return Event{Type: EventClosed}
		}
	}
}

func (t *termImpl) writeRaw(data []byte) {
	t.backend.Write(data)
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}

//go:build !unix

package terminal

import "errors"

var ErrNotTerminal = errors.New("terminal backend unsupported on this platform")

type stubBackend struct{}

func newBackend() Backend { return stubBackend{} }

func (stubBackend) Init() error { return ErrNotTerminal }
func (stubBackend) Fini() {}
func (stubBackend) Size() (int, int) { return 0, 0 }
func (stubBackend) Write(p []byte) (int, error) { return 0, ErrNotTerminal }
func (stubBackend) Read(<-chan struct{}) ([]byte, error) { return nil, ErrNotTerminal }

func resetTerminalMode() {}

// Package terminal provides direct ANSI terminal control for a full-frame renderer.
//
// Features:
//   - Raw mode entry and restoration via golang.org/x/term
//   - Alternate screen, hidden cursor, auto-wrap disabled for bottom-right writes
//   - Raw stdin input parsing with escape sequence handling
//   - Clean terminal restoration on exit/panic
//
// Output is never diffed: callers hand over a complete frame (cursor home plus every cell)
// per Write. Dimensions are read once at Init and not tracked afterwards.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal

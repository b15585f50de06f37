// Package display provides frame sinks for the engine loop.
//
// ANSI writes each frame as a single cursor-home plus buffer write to any
// writer, normally the raw terminal from package terminal. Tcell blits the
// frame into a tcell.Screen and shows it.
package display

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/termcast/audio"
	"github.com/lixenwraith/termcast/engine"
	"github.com/lixenwraith/termcast/input"
	"github.com/lixenwraith/termcast/terminal"
	"github.com/lixenwraith/termcast/world"
)

const (
	exitOK     = 0
	exitFail   = 1
	exitConfig = 2
)

// Spawn pose, inside the top-left room facing south
var spawn = engine.Player{X: 1, Y: 1, Angle: 0}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "termcast: %v\n", err)
		return exitConfig
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// Panic Recovery: Ensure terminal is reset even if the renderer crashes
	defer func() {
		if r := recover(); r != nil {
			crash("TERMCAST CRASHED", r)
			code = exitFail
		}
	}()

	m := world.Default()

	var cue *audio.Cue
	if cfg.Sound {
		cue = audio.NewCue()
		if err := cue.Init(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
		defer func() {
			log.Printf("bump cue played %d time(s)", cue.Played())
			cue.Close()
		}()
	}

	drv, err := openDriver(cfg.Display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize %s display: %v\n", cfg.Display, err)
		return exitFail
	}
	log.Printf("display %s %dx%d, map %dx%d", cfg.Display, drv.width, drv.height, m.Width(), m.Height())

	queue := input.NewQueue()
	listener := input.NewListener(drv.keys, queue)
	listener.SetCrashHandler(func(r any) {
		crash("INPUT CRASHED", r)
		os.Exit(exitFail)
	})

	loop, err := engine.NewLoop(engine.LoopConfig{
		Width:   drv.width,
		Height:  drv.height,
		Map:     m,
		Start:   spawn,
		Display: drv.sink,
		Events:  queue,
		OnFrame: frameHook(cue),
	})
	if err != nil {
		drv.close()
		fmt.Fprintf(os.Stderr, "termcast: %v\n", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	listener.Start()
	err = loop.Run(ctx)
	drv.close()

	switch {
	case err == nil:
		log.Printf("exit after %d frames", loop.Frames())
		return exitOK
	case errors.Is(err, input.ErrSourceClosed):
		log.Printf("input closed after %d frames", loop.Frames())
		return exitOK
	default:
		log.Printf("exit with error: %v", err)
		fmt.Fprintf(os.Stderr, "termcast: %v\n", err)
		return exitFail
	}
}

// frameHook logs rejected moves and unknown keys and sounds the bump cue
func frameHook(cue *audio.Cue) engine.FrameHook {
	return func(st engine.State, out engine.Outcome) {
		if out.Blocked > 0 {
			log.Printf("blocked %d move(s) at (%.3f, %.3f)", out.Blocked, st.Player.X, st.Player.Y)
			if cue != nil {
				cue.Bump()
			}
		}
		if out.Unrecognized > 0 {
			log.Print(st.Diagnostic)
		}
	}
}

// crash restores the terminal and reports r with its stack
// Uses \r\n for raw mode compatibility to avoid zig-zag output
func crash(what string, r any) {
	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()
	log.Printf("%s: %v\n%s", what, r, debug.Stack())
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", what, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

const (
	driverANSI  = "ansi"
	driverTcell = "tcell"
)

var errUnknownDriver = errors.New("unknown display driver")

// Config is the command-line configuration
type Config struct {
	Display string
	Sound   bool
	Debug   bool
}

// parseFlags reads args into a Config; usage goes to out
func parseFlags(args []string, out io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("termcast", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.Display, "display", driverANSI, "Display driver: ansi, tcell")
	fs.BoolVar(&cfg.Sound, "sound", false, "Play a bump sound when walking into walls")
	fs.BoolVar(&cfg.Debug, "debug", false, "Write a debug log to "+logDir+"/"+logFileName)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, cfg.Validate()
}

// Validate checks field values
func (c Config) Validate() error {
	switch c.Display {
	case driverANSI, driverTcell:
		return nil
	}
	return fmt.Errorf("%w: %q", errUnknownDriver, c.Display)
}

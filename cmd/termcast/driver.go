package main

import (
	"github.com/lixenwraith/termcast/display"
	"github.com/lixenwraith/termcast/engine"
	"github.com/lixenwraith/termcast/input"
	"github.com/lixenwraith/termcast/terminal"
)

// driver bundles one output backend with its matching key source
type driver struct {
	sink          engine.Display
	keys          input.Source
	width, height int
	close         func()
}

func openDriver(name string) (*driver, error) {
	if name == driverTcell {
		return openTcell()
	}
	return openANSI()
}

func openANSI() (*driver, error) {
	term := terminal.New()
	if err := term.Init(); err != nil {
		return nil, err
	}
	w, h := term.Size()
	return &driver{
		sink:   display.NewANSI(term),
		keys:   input.NewTerminalSource(term),
		width:  w,
		height: h,
		close:  term.Fini,
	}, nil
}

func openTcell() (*driver, error) {
	screen, err := display.OpenTcell()
	if err != nil {
		return nil, err
	}
	w, h := screen.Size()
	return &driver{
		sink:   display.NewTcell(screen),
		keys:   input.NewTcellSource(screen),
		width:  w,
		height: h,
		close:  screen.Fini,
	}, nil
}

package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/s-o-l-ar/Neon/internal/config"
)

// globalState holds everything a command touches outside its own flags, so
// tests can swap the filesystem and standard streams.
type globalState struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	stderrTTY bool

	logger *logrus.Logger
	flags  rootFlags
	cfg    config.Config

	errColor  *color.Color // diagnostics
	treeColor *color.Color // syntax trees in the REPL
}

func newGlobalState() *globalState {
	stderr := colorable.NewColorableStderr()
	return &globalState{
		fs:        afero.NewOsFs(),
		stdin:     os.Stdin,
		stdout:    colorable.NewColorableStdout(),
		stderr:    stderr,
		stderrTTY: isTerminal(os.Stderr),
		logger:    newLogger(stderr),
		cfg:       config.Default(),
		errColor:  color.New(color.FgRed),
		treeColor: color.New(color.FgHiBlack),
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// useColor resolves a color mode against the terminal state.
func useColor(mode string, tty bool) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return tty
}

func (gs *globalState) setColors(enabled bool) {
	for _, c := range []*color.Color{gs.errColor, gs.treeColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes one human-readable line per step to the console
type Printer struct {
	w      io.Writer
	action *color.Color
	target *color.Color
}

// Option is a functional option for Printer
type Option func(*Printer)

// WithWriter sets the output destination. Default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		p.w = w
	}
}

// WithColor enables or disables ANSI colors regardless of the terminal
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		if enabled {
			p.action.EnableColor()
			p.target.EnableColor()
		} else {
			p.action.DisableColor()
			p.target.DisableColor()
		}
	}
}

// New creates a Printer. Colors follow fatih/color's terminal detection unless WithColor is given.
func New(opts ...Option) *Printer {
	p := &Printer{
		w:      os.Stdout,
		action: color.New(color.FgCyan, color.Bold),
		target: color.New(color.FgWhite),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Downloading prints "downloading <name>"
func (p *Printer) Downloading(name string) {
	fmt.Fprintf(p.w, "%s %s\n", p.action.Sprint("downloading"), p.target.Sprint(name))
}

// Extracting prints "extracting <name> to <dest>"
func (p *Printer) Extracting(name, dest string) {
	fmt.Fprintf(p.w, "%s %s to %s\n", p.action.Sprint("extracting"), p.target.Sprint(name), p.target.Sprint(dest))
}

// Discard returns a Printer that writes nothing
func Discard() *Printer {
	return New(WithWriter(io.Discard), WithColor(false))
}

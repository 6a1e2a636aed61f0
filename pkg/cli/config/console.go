package config

import (
	"os"

	"github.com/m-mizutani/assetfetch/pkg/utils/progress"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

// Console holds console output configuration
type Console struct {
	NoColor bool
}

// Flags returns CLI flags for console configuration
func (c *Console) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("ASSETFETCH_NO_COLOR"),
		},
	}
}

// Printer returns the progress printer for the console
func (c *Console) Printer() *progress.Printer {
	if c.NoColor {
		return progress.New(progress.WithColor(false))
	}
	return progress.New()
}

// LogColor reports whether log lines written to stderr should be colored
func (c *Console) LogColor() bool {
	return !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
}

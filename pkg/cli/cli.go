package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/assetfetch/pkg/cli/config"
	"github.com/m-mizutani/assetfetch/pkg/domain/types"
	"github.com/m-mizutani/assetfetch/pkg/infra/gdrive"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// options holds settings that are not exposed as flags
type options struct {
	downloadOpts []gdrive.Option
}

// Option is a functional option for Run
type Option func(*options)

// WithDownloadBaseURL replaces the download endpoint
func WithDownloadBaseURL(baseURL string) Option {
	return func(o *options) {
		o.downloadOpts = append(o.downloadOpts, gdrive.WithBaseURL(baseURL))
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	var (
		loggerCfg  config.Logger
		consoleCfg config.Console
		logger     *slog.Logger
		runOpts    options
	)

	for _, opt := range opts {
		opt(&runOpts)
	}

	flags := append(loggerCfg.Flags(), consoleCfg.Flags()...)
	install := cmdInstall(&consoleCfg, runOpts.downloadOpts...)

	app := &cli.Command{
		Name:    types.AppName,
		Usage:   "Download and unpack external libraries and assets into the working tree",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			loggerCfg.Color = consoleCfg.LogColor()

			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			logger = logger.With("run_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		// Running without a subcommand installs
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return goerr.New("unknown command", goerr.V("command", c.Args().First()))
			}
			return install.Action(ctx, c)
		},
		Commands: []*cli.Command{
			install,
			cmdJobs(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}

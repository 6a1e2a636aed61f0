package cli

import (
	"context"

	"github.com/m-mizutani/assetfetch/pkg/cli/config"
	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/assetfetch/pkg/infra/archive"
	"github.com/m-mizutani/assetfetch/pkg/infra/gdrive"
	"github.com/m-mizutani/assetfetch/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdInstall(consoleCfg *config.Console, downloadOpts ...gdrive.Option) *cli.Command {
	return &cli.Command{
		Name:    "install",
		Aliases: []string{"i"},
		Usage:   "Download every archive, extract it and delete it",
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			jobs, err := model.DefaultJobs()
			if err != nil {
				return goerr.Wrap(err, "failed to load jobs")
			}

			installUC := usecase.NewInstall(
				gdrive.NewClient(downloadOpts...),
				archive.NewZipExtractor(),
				usecase.WithPrinter(consoleCfg.Printer()),
			)

			logger.Info("Starting install", "job_count", len(jobs))

			if _, err := installUC.Install(ctx, jobs); err != nil {
				return err
			}

			logger.Info("Install complete")
			return nil
		},
	}
}

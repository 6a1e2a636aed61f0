package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdJobs() *cli.Command {
	return &cli.Command{
		Name:    "jobs",
		Aliases: []string{"ls"},
		Usage:   "Show the archives fetched by install",
		Action: func(ctx context.Context, c *cli.Command) error {
			jobs, err := model.DefaultJobs()
			if err != nil {
				return goerr.Wrap(err, "failed to load jobs")
			}

			w := c.Root().Writer
			for _, job := range jobs {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", job.Name, job.ArchivePath, job.Destination()); err != nil {
					return goerr.Wrap(err, "failed to write job list")
				}
			}
			return nil
		},
	}
}

package interfaces

import (
	"context"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
)

// InstallUseCase runs fetch jobs
type InstallUseCase interface {
	// Install runs the jobs in order and stops at the first failure. Reports cover
	// every job that was started, including the one that failed.
	Install(ctx context.Context, jobs []model.Job) ([]*model.JobReport, error)
}

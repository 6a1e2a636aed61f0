package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/assetfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/assetfetch/pkg/domain/types"
	"github.com/m-mizutani/assetfetch/pkg/utils/progress"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type installUseCase struct {
	downloader interfaces.Downloader
	extractor  interfaces.Extractor
	printer    *progress.Printer
	remove     func(path string) error
}

// InstallOption is a functional option for the install use case
type InstallOption func(*installUseCase)

// WithPrinter sets the console progress printer
func WithPrinter(p *progress.Printer) InstallOption {
	return func(uc *installUseCase) {
		uc.printer = p
	}
}

// WithRemoveFunc replaces the function deleting archives after extraction
func WithRemoveFunc(remove func(path string) error) InstallOption {
	return func(uc *installUseCase) {
		uc.remove = remove
	}
}

// NewInstall creates a new instance of InstallUseCase
func NewInstall(downloader interfaces.Downloader, extractor interfaces.Extractor, opts ...InstallOption) interfaces.InstallUseCase {
	uc := &installUseCase{
		downloader: downloader,
		extractor:  extractor,
		printer:    progress.New(),
		remove:     os.Remove,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// Install runs every job in order: download, extract, then delete the archive.
// The first failure stops the run; jobs after it are never started and nothing
// already written is rolled back.
func (uc *installUseCase) Install(ctx context.Context, jobs []model.Job) ([]*model.JobReport, error) {
	logger := ctxlog.From(ctx)

	reports := make([]*model.JobReport, 0, len(jobs))
	for _, job := range jobs {
		report := &model.JobReport{Job: job, State: model.JobStatePending}
		reports = append(reports, report)

		if err := uc.runJob(ctx, report); err != nil {
			step := report.Step()
			report.State = model.JobStateFailed

			logger.Error("Job failed",
				"job", job.Name,
				"step", step,
				"archive", job.ArchivePath,
				"error", err,
			)

			return reports, goerr.Wrap(err, fmt.Sprintf("failed to %s %s", step, job.ArchivePath),
				goerr.V("job", job.Name),
				goerr.V("step", step),
				goerr.V("archive", job.ArchivePath),
				goerr.V("destination", job.Destination()),
			)
		}
	}

	logger.Info("All jobs completed", "job_count", len(reports))

	return reports, nil
}

// runJob advances report through download, extract and cleanup. On error the
// report is left in the last state reached.
func (uc *installUseCase) runJob(ctx context.Context, report *model.JobReport) error {
	logger := ctxlog.From(ctx)
	job := &report.Job

	if err := job.Validate(); err != nil {
		return err
	}

	logger.Info("Processing job",
		"job", job.Name,
		"id", job.ID,
		"archive", job.ArchivePath,
		"destination", job.Destination(),
	)

	uc.printer.Downloading(job.ArchivePath)
	size, err := uc.downloader.Download(ctx, job.ID, job.ArchivePath)
	if err != nil {
		return err
	}
	report.Downloaded = size
	report.State = model.JobStateDownloaded

	logger.Info("Downloaded archive",
		"job", job.Name,
		"archive", job.ArchivePath,
		"size_bytes", size,
	)

	uc.printer.Extracting(job.ArchivePath, job.Destination())
	result, err := uc.extractor.Extract(ctx, job.ArchivePath, job.DestinationDir)
	if err != nil {
		return err
	}
	report.Extracted = result
	report.State = model.JobStateExtracted

	logger.Info("Extracted archive",
		"job", job.Name,
		"destination", job.Destination(),
		"file_count", len(result.Files),
		"total_size_bytes", result.Size,
	)

	if err := uc.remove(job.ArchivePath); err != nil {
		return goerr.Wrap(err, "failed to delete archive", goerr.T(types.ErrTagIO), goerr.V("path", job.ArchivePath))
	}
	report.State = model.JobStateCleaned

	logger.Debug("Deleted archive", "job", job.Name, "archive", job.ArchivePath)

	return nil
}

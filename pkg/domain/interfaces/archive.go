package interfaces

import (
	"context"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/assetfetch/pkg/domain/types"
)

// Downloader fetches a remote archive into a local file
type Downloader interface {
	// Download writes the resource addressed by id to dst and returns the bytes written
	Download(ctx context.Context, id types.FileID, dst string) (int64, error)
}

// Extractor unpacks a local archive
type Extractor interface {
	// Extract writes every entry of the archive under dstDir
	Extract(ctx context.Context, archivePath, dstDir string) (*model.ExtractResult, error)
}

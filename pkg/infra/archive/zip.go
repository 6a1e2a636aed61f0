package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/m-mizutani/assetfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/assetfetch/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultFileMode os.FileMode = 0644
	execFileMode    os.FileMode = 0755
	defaultDirMode  os.FileMode = 0755
)

type zipExtractor struct{}

// NewZipExtractor creates an Extractor for zip archives
func NewZipExtractor() interfaces.Extractor {
	return &zipExtractor{}
}

// Extract writes every entry of the zip archive under dstDir. Entry paths are
// resolved inside dstDir, so "../" components cannot escape it. Existing files
// are overwritten.
func (x *zipExtractor) Extract(ctx context.Context, archivePath, dstDir string) (*model.ExtractResult, error) {
	logger := ctxlog.From(ctx)

	if dstDir == "" {
		dstDir = "."
	}

	// Non-local entry names are confined by securejoin below, so ErrInsecurePath
	// still leaves a usable reader.
	zr, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, goerr.Wrap(err, "failed to open archive", goerr.T(types.ErrTagIO), goerr.V("path", archivePath))
		}
		return nil, goerr.Wrap(err, "failed to read zip archive", goerr.T(types.ErrTagFormat), goerr.V("path", archivePath))
	}
	defer zr.Close()

	if err := os.MkdirAll(dstDir, defaultDirMode); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination directory", goerr.T(types.ErrTagIO), goerr.V("dir", dstDir))
	}

	result := &model.ExtractResult{}
	for _, file := range zr.File {
		if err := extractFile(file, dstDir); err != nil {
			return nil, goerr.Wrap(err, "failed to extract entry", goerr.V("entry", file.Name), goerr.V("path", archivePath))
		}

		result.Files = append(result.Files, file.Name)
		result.Size += int64(file.UncompressedSize64)
	}

	logger.Debug("Extracted archive",
		"path", archivePath,
		"dst", dstDir,
		"file_count", len(result.Files),
		"total_size_bytes", result.Size,
	)

	return result, nil
}

// extractFile extracts a single entry into destDir
func extractFile(file *zip.File, destDir string) error {
	destPath, err := securejoin.SecureJoin(destDir, file.Name)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve entry path", goerr.T(types.ErrTagIO), goerr.V("entry", file.Name))
	}

	mode := file.Mode()
	if mode.IsDir() || strings.HasSuffix(file.Name, "/") {
		if err := os.MkdirAll(destPath, defaultDirMode); err != nil {
			return goerr.Wrap(err, "failed to create directory", goerr.T(types.ErrTagIO), goerr.V("dir", destPath))
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), defaultDirMode); err != nil {
		return goerr.Wrap(err, "failed to create parent directories", goerr.T(types.ErrTagIO), goerr.V("dir", filepath.Dir(destPath)))
	}

	rc, err := file.Open()
	if err != nil {
		return goerr.Wrap(err, "failed to open entry", goerr.T(types.ErrTagFormat), goerr.V("entry", file.Name))
	}
	defer rc.Close()

	destFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode(mode))
	if err != nil {
		return goerr.Wrap(err, "failed to create destination file", goerr.T(types.ErrTagIO), goerr.V("path", destPath))
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, &entryReader{r: rc, name: file.Name}); err != nil {
		if goerr.HasTag(err, types.ErrTagFormat) {
			return err
		}
		return goerr.Wrap(err, "failed to write destination file", goerr.T(types.ErrTagIO), goerr.V("path", destPath))
	}

	if err := destFile.Close(); err != nil {
		return goerr.Wrap(err, "failed to close destination file", goerr.T(types.ErrTagIO), goerr.V("path", destPath))
	}

	return nil
}

// entryReader tags read failures as format errors so they can be told apart
// from write failures after io.Copy
type entryReader struct {
	r    io.Reader
	name string
}

func (x *entryReader) Read(p []byte) (int, error) {
	n, err := x.r.Read(p)
	if err != nil && err != io.EOF {
		return n, goerr.Wrap(err, "corrupt archive entry", goerr.T(types.ErrTagFormat), goerr.V("entry", x.name))
	}
	return n, err
}

// fileMode keeps only the executable bit of the archived mode. Read-only
// attributes are dropped so a later run can overwrite the file.
func fileMode(mode os.FileMode) os.FileMode {
	if mode&0111 != 0 {
		return execFileMode
	}
	return defaultFileMode
}

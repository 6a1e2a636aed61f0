package model

import (
	"github.com/m-mizutani/assetfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Job is one download, extract and cleanup cycle
type Job struct {
	Name           string       `toml:"name"`        // Short label used in logs and errors
	ID             types.FileID `toml:"id"`          // Remote file identifier
	ArchivePath    string       `toml:"archive"`     // Where the downloaded archive is written
	DestinationDir string       `toml:"destination"` // Extraction root, empty means working directory
}

// Validate checks that the job can be run
func (x *Job) Validate() error {
	if x.ID == "" {
		return goerr.New("job id is empty", goerr.V("job", x.Name))
	}
	if x.ArchivePath == "" {
		return goerr.New("job archive path is empty", goerr.V("job", x.Name))
	}
	return nil
}

// Destination returns the extraction root as shown to users
func (x *Job) Destination() string {
	if x.DestinationDir == "" {
		return "."
	}
	return x.DestinationDir
}

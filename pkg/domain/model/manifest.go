package model

import (
	_ "embed"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

//go:embed jobs.toml
var defaultManifest []byte

type manifest struct {
	Jobs []Job `toml:"job"`
}

// DefaultJobs returns the fixed jobs compiled into the binary
func DefaultJobs() ([]Job, error) {
	return ParseJobs(defaultManifest)
}

// ParseJobs decodes and validates a TOML job manifest
func ParseJobs(data []byte) ([]Job, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to parse job manifest")
	}

	if len(m.Jobs) == 0 {
		return nil, goerr.New("job manifest has no jobs")
	}

	for i := range m.Jobs {
		if err := m.Jobs[i].Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid job in manifest", goerr.V("index", i))
		}
	}

	return m.Jobs, nil
}

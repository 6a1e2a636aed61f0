package model_test

import (
	"testing"

	"github.com/m-mizutani/assetfetch/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestDefaultJobs(t *testing.T) {
	jobs, err := model.DefaultJobs()
	gt.NoError(t, err)
	gt.Value(t, len(jobs)).Equal(2)

	gt.Value(t, jobs[0].Name).Equal("libs")
	gt.Value(t, jobs[0].ID.String()).Equal("189FAfP3qt_UAY1HMF5SolJtvp8DRHnrG")
	gt.Value(t, jobs[0].ArchivePath).Equal("libs.zip")
	gt.Value(t, jobs[0].DestinationDir).Equal("src/")

	gt.Value(t, jobs[1].Name).Equal("assets")
	gt.Value(t, jobs[1].ID.String()).Equal("1Lmfw96dTRpZ2a3Or-DUqzlntcCHsaFaR")
	gt.Value(t, jobs[1].ArchivePath).Equal("assets.zip")
	gt.Value(t, jobs[1].DestinationDir).Equal("")
	gt.Value(t, jobs[1].Destination()).Equal(".")
}

func TestParseJobs(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		count   int
		wantErr bool
	}{
		{
			name: "single job",
			data: `
[[job]]
name = "a"
id = "x"
archive = "a.zip"
destination = "out"
`,
			count: 1,
		},
		{
			name:    "no jobs",
			data:    `# empty`,
			wantErr: true,
		},
		{
			name: "missing id",
			data: `
[[job]]
name = "a"
archive = "a.zip"
`,
			wantErr: true,
		},
		{
			name: "missing archive",
			data: `
[[job]]
name = "a"
id = "x"
`,
			wantErr: true,
		},
		{
			name:    "broken toml",
			data:    `[[job]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := model.ParseJobs([]byte(tt.data))
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Value(t, len(jobs)).Equal(tt.count)
		})
	}
}

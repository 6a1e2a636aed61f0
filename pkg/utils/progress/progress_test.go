package progress_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/assetfetch/pkg/utils/progress"
	"github.com/m-mizutani/gt"
)

func TestPrinter(t *testing.T) {
	t.Run("plain output", func(t *testing.T) {
		var buf bytes.Buffer
		p := progress.New(progress.WithWriter(&buf), progress.WithColor(false))

		p.Downloading("libs.zip")
		p.Extracting("libs.zip", "src/")

		gt.Value(t, buf.String()).Equal("downloading libs.zip\nextracting libs.zip to src/\n")
	})

	t.Run("colored output keeps the text", func(t *testing.T) {
		var buf bytes.Buffer
		p := progress.New(progress.WithWriter(&buf), progress.WithColor(true))

		p.Downloading("assets.zip")

		gt.String(t, buf.String()).Contains("\x1b[")
		gt.String(t, buf.String()).Contains("downloading")
		gt.String(t, buf.String()).Contains("assets.zip")
	})

	t.Run("discard", func(t *testing.T) {
		p := progress.Discard()
		p.Downloading("libs.zip")
		p.Extracting("libs.zip", ".")
	})
}

package types_test

import (
	"testing"

	"github.com/m-mizutani/assetfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestErrorTags_SurviveWrap(t *testing.T) {
	cause := goerr.New("broken entry", goerr.T(types.ErrTagFormat))
	wrapped := goerr.Wrap(goerr.Wrap(cause, "failed to extract"), "failed to extract libs.zip", goerr.V("job", "libs"))

	gt.True(t, goerr.HasTag(wrapped, types.ErrTagFormat))
	gt.False(t, goerr.HasTag(wrapped, types.ErrTagIO))
	gt.False(t, goerr.HasTag(wrapped, types.ErrTagNetwork))
}

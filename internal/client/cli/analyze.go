package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/avolkovs/wpcloud/internal/common"
)

// Analyze requests content tags for key, defaulting to the current
// selection. The ownership guard lives in the analysis service; a foreign
// key never produces a request. A successful result for the selected file
// moves it to the analyzed state.
func (a *App) Analyze(ctx context.Context, key string) error {
	if key == "" {
		key = a.selectedKey
	}
	if key == "" {
		printlnFn("Nothing selected. Use 'select <key>' or 'analyze <key>'.")
		return nil
	}

	res, err := a.analysis.Analyze(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrStaleResponse) {
			return nil
		}
		return err
	}

	if res.Malformed {
		a.log.Warn(ctx, "analysis payload unrecognized", "key", key)
	}

	if key == a.selectedKey {
		a.tags = res.Tags
	}

	if len(res.Tags) == 0 {
		printlnFn("No tags for", key)
		return nil
	}
	printlnFn("Tags:", strings.Join(res.Tags, ", "))
	return nil
}

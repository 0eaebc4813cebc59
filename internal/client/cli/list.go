package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkovs/wpcloud/internal/common"
)

// Refresh reloads the catalog and replaces the visible file list. A response
// that lost the race against a newer refresh is dropped without touching the
// view.
func (a *App) Refresh(ctx context.Context) error {
	files, err := a.catalog.List(ctx)
	if err != nil {
		if errors.Is(err, common.ErrStaleResponse) {
			return nil
		}
		return err
	}

	a.files = files

	if len(files) == 0 {
		printlnFn("No files yet for", a.store.OwnerID())
		return nil
	}
	for _, f := range files {
		if f.Size > 0 {
			printlnFn(fmt.Sprintf("%s  (%d bytes)", f.Key, f.Size))
		} else {
			printlnFn(f.Key)
		}
	}
	return nil
}

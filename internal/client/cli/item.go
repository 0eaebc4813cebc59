package cli

import (
	"context"
	"fmt"
	"strings"
)

// Select makes key the current selection. Only keys present in the visible
// catalog can be selected; selecting clears tags and releases the preview of
// the previous selection.
func (a *App) Select(ctx context.Context, key string) error {
	found := false
	for _, f := range a.files {
		if f.Key == key {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown file %q (run 'list' first)", key)
	}

	a.setSelection(key, nil)
	printlnFn("Selected:", key)
	return nil
}

// Tags prints the analysis result of the current selection.
func (a *App) Tags(ctx context.Context) error {
	if a.selectedKey == "" {
		printlnFn("Nothing selected.")
		return nil
	}
	if len(a.tags) == 0 {
		printlnFn("No tags for", a.selectedKey)
		return nil
	}
	printlnFn("Tags:", strings.Join(a.tags, ", "))
	return nil
}

package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Upload runs the three-phase upload handshake for the file at path. On
// success the uploaded object becomes the current selection, its preview
// supersedes the previous one, and the refreshed catalog replaces the view.
// On any failure the prior catalog and selection are left unchanged.
func (a *App) Upload(ctx context.Context, path string) error {
	data, err := readFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	contentType := mime.TypeByExtension(filepath.Ext(name))

	res, err := a.upload.Upload(ctx, name, contentType, data)
	if err != nil {
		return err
	}

	a.setSelection(res.ObjectKey, res.Preview)
	if res.Files != nil {
		a.files = res.Files
	}

	printlnFn("Uploaded:", res.ObjectKey)
	if res.Preview != nil {
		printlnFn("Preview:", res.Preview.Path)
	}
	return nil
}

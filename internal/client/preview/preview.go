// Package preview manages the transient local copy of just-uploaded bytes
// that the UI shows until another file is selected.
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Handle is a scoped display reference to a temp file. It must be released
// exactly once, when a later selection or upload supersedes it; Release is
// idempotent so every code path can call it safely.
type Handle struct {
	ID   string
	Path string

	once sync.Once
	err  error
}

// New writes data to a fresh temp file and returns its handle. ext (with
// leading dot, may be empty) keeps the viewer able to sniff the format.
func New(data []byte, ext string) (*Handle, error) {
	id := uuid.NewString()
	path := filepath.Join(os.TempDir(), "wpcloud-preview-"+id+ext)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("write preview %s: %w", path, err)
	}
	return &Handle{ID: id, Path: path}, nil
}

// Release removes the backing file. Subsequent calls are no-ops returning
// the first result.
func (h *Handle) Release() error {
	h.once.Do(func() {
		if err := os.Remove(h.Path); err != nil && !os.IsNotExist(err) {
			h.err = fmt.Errorf("remove preview %s: %w", h.Path, err)
		}
	})
	return h.err
}

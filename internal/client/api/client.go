// Package api talks to the vault backend and the delegated storage URL.
// It maps transport and status failures onto the shared error taxonomy and
// never persists anything; session state belongs to the session package.
package api

import (
	"context"
	"encoding/json"
	"io"

	"github.com/avolkovs/wpcloud/internal/client/models"
)

// Client is the remote surface the services depend on. The concrete
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// Login exchanges credentials for a session. The caller decides whether
	// to persist it.
	Login(ctx context.Context, email, password string) (models.Session, error)

	// Register creates an account. Success is an acknowledgement only; no
	// session is produced.
	Register(ctx context.Context, email, password, displayName string) error

	// ListFiles returns every file the backend reports for ownerID. Callers
	// must still re-validate ownership before showing anything.
	ListFiles(ctx context.Context, ownerID string) ([]models.FileItem, error)

	// RequestUpload asks the backend for a delegated write credential for
	// fileName. The backend, not the client, computes the object key.
	RequestUpload(ctx context.Context, fileName string) (models.UploadTicket, error)

	// PutObject writes raw bytes directly to the delegated storage URL.
	// No bearer token: the URL itself is the credential.
	PutObject(ctx context.Context, uploadURL, contentType string, body io.Reader) error

	// Analyze requests a content-analysis pass for key and returns the raw
	// analysis document.
	Analyze(ctx context.Context, key string) (json.RawMessage, error)
}

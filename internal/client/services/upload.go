package services

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avolkovs/wpcloud/internal/client/api"
	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/client/preview"
	"github.com/avolkovs/wpcloud/internal/client/session"
	"github.com/avolkovs/wpcloud/internal/common"
	"github.com/avolkovs/wpcloud/internal/logging"
)

// DefaultContentType is used when the file declares no media type.
const DefaultContentType = "application/octet-stream"

// UploadResult is the outcome of a completed upload handshake.
type UploadResult struct {
	// ObjectKey is the storage key the backend assigned; it becomes the new
	// selection.
	ObjectKey string

	// Files is the refreshed catalog. Nil when the post-upload refresh
	// failed; the upload itself is already durable at that point.
	Files []models.FileItem

	// Preview is the transient display handle for the uploaded bytes. The
	// caller owns it and must release it when a later selection supersedes
	// it. May be nil if the local copy could not be written.
	Preview *preview.Handle
}

// UploadService runs the three-phase upload handshake: request a delegated
// write credential, transfer the bytes directly to storage, refresh the
// catalog. Each phase is gated on the previous one; any failure leaves the
// prior catalog and selection state unchanged.
type UploadService interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (*UploadResult, error)
}

type uploadService struct {
	api             api.Client
	store           *session.Store
	catalog         CatalogService
	log             logging.Logger
	verifyObjectKey bool
}

// NewUploadService wires the coordinator. verifyObjectKey controls whether a
// phase-1 ticket whose object key is not "<ownerId>/<fileName>" aborts the
// upload; disabling it restores blind trust in the backend.
func NewUploadService(api api.Client, store *session.Store, catalog CatalogService, log logging.Logger, verifyObjectKey bool) UploadService {
	return &uploadService{api: api, store: store, catalog: catalog, log: log, verifyObjectKey: verifyObjectKey}
}

func (u *uploadService) Upload(ctx context.Context, fileName, contentType string, data []byte) (*UploadResult, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, fmt.Errorf("file name is required: %w", common.ErrValidation)
	}

	sess, ok := u.store.Load()
	if !ok {
		return nil, common.ErrNoSession
	}
	owner := sess.Identity.OwnerID()
	if owner == "" {
		return nil, fmt.Errorf("user not found in session: %w", common.ErrNoSession)
	}

	// Phase 1: delegated write credential.
	ticket, err := u.api.RequestUpload(ctx, fileName)
	if err != nil {
		return nil, fmt.Errorf("request upload credential: %w", err)
	}
	if ticket.UploadURL == "" {
		return nil, fmt.Errorf("upload ticket has no url: %w", common.ErrMalformedResponse)
	}
	if u.verifyObjectKey {
		if want := models.ObjectKey(owner, fileName); ticket.ObjectKey != want {
			return nil, fmt.Errorf("ticket names %q, expected %q: %w", ticket.ObjectKey, want, common.ErrObjectKeyMismatch)
		}
	}

	// Phase 2: direct write. Terminal on failure, no retry.
	if contentType == "" {
		contentType = DefaultContentType
	}
	if err := u.api.PutObject(ctx, ticket.UploadURL, contentType, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("transfer %s: %w", fileName, err)
	}

	// Phase 3: local preview and catalog refresh. The bytes are durable in
	// storage now, so neither step can fail the upload anymore.
	result := &UploadResult{ObjectKey: ticket.ObjectKey}

	h, err := preview.New(data, filepath.Ext(fileName))
	if err != nil {
		u.log.Warn(ctx, "preview unavailable", "file", fileName, "error", err)
	} else {
		result.Preview = h
	}

	files, err := u.catalog.List(ctx)
	if err != nil {
		u.log.Warn(ctx, "catalog refresh after upload failed", "error", err)
		return result, nil
	}
	result.Files = files
	return result, nil
}

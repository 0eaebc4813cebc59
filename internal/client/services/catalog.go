package services

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/avolkovs/wpcloud/internal/client/api"
	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/client/session"
	"github.com/avolkovs/wpcloud/internal/common"
)

// CatalogService lists the files owned by the current identity.
type CatalogService interface {
	// List returns the server's listing reduced to items whose key carries
	// the "<ownerId>/" prefix. The displayed set is always the intersection
	// of the server response and the ownership predicate, never the raw
	// response. An empty result is a valid outcome.
	List(ctx context.Context) ([]models.FileItem, error)
}

type catalogService struct {
	api   api.Client
	store *session.Store
	gen   atomic.Uint64
}

func NewCatalogService(api api.Client, store *session.Store) CatalogService {
	return &catalogService{api: api, store: store}
}

func (c *catalogService) List(ctx context.Context) ([]models.FileItem, error) {
	sess, ok := c.store.Load()
	if !ok {
		return nil, common.ErrNoSession
	}
	owner := sess.Identity.OwnerID()
	if owner == "" {
		return nil, fmt.Errorf("user not found in session: %w", common.ErrNoSession)
	}

	// Generation guard: a response that arrives after a newer List call
	// started must not overwrite the newer view.
	gen := c.gen.Add(1)

	all, err := c.api.ListFiles(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	if c.gen.Load() != gen {
		return nil, common.ErrStaleResponse
	}

	mine := make([]models.FileItem, 0, len(all))
	for _, f := range all {
		if models.OwnedBy(owner, f.Key) {
			mine = append(mine, f)
		}
	}
	return mine, nil
}

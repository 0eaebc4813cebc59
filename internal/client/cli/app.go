package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/avolkovs/wpcloud/internal/client/api"
	"github.com/avolkovs/wpcloud/internal/client/config"
	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/client/preview"
	"github.com/avolkovs/wpcloud/internal/client/services"
	"github.com/avolkovs/wpcloud/internal/client/session"
	"github.com/avolkovs/wpcloud/internal/logging"
)

// App wires the vault services to the interactive command loop and owns the
// view state: the visible catalog, the current selection, its tags and the
// transient preview of the last upload.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    *session.Store
	auth     services.AuthService
	catalog  services.CatalogService
	upload   services.UploadService
	analysis services.AnalysisService
	reader   *bufio.Reader

	files       []models.FileItem
	selectedKey string
	tags        []string
	preview     *preview.Handle
}

// NewApp builds the full client stack for the given config. The session
// store is the single source of truth for auth state; every service reads
// it, only login and logout write it.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	store := session.NewStore(session.NewMemoryKV())
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, store.Token)

	catalog := services.NewCatalogService(apiClient, store)

	return &App{
		config:   cfg,
		log:      log,
		store:    store,
		auth:     services.NewAuthService(apiClient, store),
		catalog:  catalog,
		upload:   services.NewUploadService(apiClient, store, catalog, log, cfg.VerifyObjectKey),
		analysis: services.NewAnalysisService(apiClient, store),
		reader:   bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	_, ok := a.store.Load()
	return ok
}

// setSelection moves the per-file state machine to a new selection: tags are
// cleared and the superseded preview handle is released. h may be nil when
// the selection has no local preview.
func (a *App) setSelection(key string, h *preview.Handle) {
	if a.preview != nil && a.preview != h {
		if err := a.preview.Release(); err != nil {
			a.log.Warn(context.Background(), "releasing preview", "error", err)
		}
	}
	a.preview = h
	a.selectedKey = key
	a.tags = nil
}

func (a *App) status() string {
	owner := a.store.OwnerID()
	if owner == "" {
		return ""
	}
	return "(" + owner + ")"
}

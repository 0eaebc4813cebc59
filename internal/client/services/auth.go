// Package services contains the application services of the vault client:
// authentication, the ownership-scoped catalog, the three-phase upload, and
// content analysis. Each service receives its collaborators at construction;
// nothing here reads ambient global state.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolkovs/wpcloud/internal/client/api"
	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/client/session"
	"github.com/avolkovs/wpcloud/internal/common"
)

// AuthService defines the session lifecycle operations.
//
// Contract:
//   - Login: validate input locally, authenticate, persist the session.
//   - Register: validate input locally, create the account; no session.
//   - Logout: clear token and identity atomically.
type AuthService interface {
	Login(ctx context.Context, email, password string) (models.Session, error)
	Register(ctx context.Context, email, password, displayName string) error
	Logout(ctx context.Context) error
}

type authService struct {
	api   api.Client
	store *session.Store
}

// NewAuthService binds the auth flow to the given API client and session store.
func NewAuthService(api api.Client, store *session.Store) AuthService {
	return &authService{api: api, store: store}
}

// Login trims and checks both credentials before any network call; a missing
// field fails fast with ErrValidation and no request is sent. On success the
// session is persisted and returned.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return models.Session{}, fmt.Errorf("email and password are required: %w", common.ErrValidation)
	}

	sess, err := a.api.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, fmt.Errorf("login: %w", err)
	}

	a.store.Save(sess)
	return sess, nil
}

// Register shares Login's validation and error contract but produces no
// session; on success the caller moves the user to the login flow.
func (a *authService) Register(ctx context.Context, email, password, displayName string) error {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return fmt.Errorf("email and password are required: %w", common.ErrValidation)
	}

	if err := a.api.Register(ctx, email, password, strings.TrimSpace(displayName)); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Logout clears the persisted session. Token and identity go together;
// there is no intermediate state.
func (a *authService) Logout(ctx context.Context) error {
	a.store.Clear()
	return nil
}

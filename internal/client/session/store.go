package session

import (
	"encoding/json"

	"github.com/avolkovs/wpcloud/internal/client/models"
)

const (
	tokenKey    = "wpcloud_token"
	identityKey = "wpcloud_user"
)

// Store reads and writes the current session. Absence of a token is the sole
// unauthenticated signal; no expiry is checked here.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Save persists the session, overwriting any existing one. The identity is
// stored as JSON next to the token.
func (s *Store) Save(sess models.Session) {
	s.kv.Set(tokenKey, sess.Token)

	// Identity marshalling cannot fail for a plain struct of strings, but
	// a session without identity is still a valid session.
	if data, err := json.Marshal(sess.Identity); err == nil {
		s.kv.Set(identityKey, string(data))
	}
}

// Load returns the persisted session, or ok=false when no token is stored.
// A corrupt persisted identity resolves to an absent identity, never an
// error: the token still authenticates, the UI just cannot scope by owner.
func (s *Store) Load() (models.Session, bool) {
	token, ok := s.kv.Get(tokenKey)
	if !ok || token == "" {
		return models.Session{}, false
	}

	sess := models.Session{Token: token}
	if raw, ok := s.kv.Get(identityKey); ok {
		var id models.Identity
		if err := json.Unmarshal([]byte(raw), &id); err == nil {
			sess.Identity = id
		}
	}
	return sess, true
}

// Clear removes token and identity together; callers never observe a state
// where one is cleared and the other remains.
func (s *Store) Clear() {
	s.kv.Delete(tokenKey, identityKey)
}

// Token returns the current bearer token, or "" when logged out. It is the
// accessor handed to the transport layer so requests always see the latest
// session without the transport owning it.
func (s *Store) Token() string {
	sess, ok := s.Load()
	if !ok {
		return ""
	}
	return sess.Token
}

// OwnerID returns the identifier scoping the current user's files, or ""
// when there is no usable identity.
func (s *Store) OwnerID() string {
	sess, ok := s.Load()
	if !ok {
		return ""
	}
	return sess.Identity.OwnerID()
}

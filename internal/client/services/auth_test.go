package services

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/client/session"
	"github.com/avolkovs/wpcloud/internal/common"
	"github.com/stretchr/testify/require"
)

// ---- fake api client ----

// fakeAPI implements api.Client for service unit tests. It records the last
// arguments and call counts so tests can assert that guarded operations
// issue no requests.
type fakeAPI struct {
	LoginSess  models.Session
	LoginErr   error
	LoginCalls int
	LastEmail  string
	LastPass   string

	RegisterErr   error
	RegisterCalls int
	LastRegEmail  string
	LastRegName   string

	ListRet       []models.FileItem
	ListErr       error
	ListCalls     int
	LastListOwner string
	OnListFiles   func()

	TicketRet    models.UploadTicket
	TicketErr    error
	TicketCalls  int
	LastFileName string

	PutErr      error
	PutCalls    int
	LastPutURL  string
	LastPutType string
	LastPutBody []byte

	AnalyzeRet   json.RawMessage
	AnalyzeErr   error
	AnalyzeCalls int
	LastKey      string
	OnAnalyze    func()
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (models.Session, error) {
	f.LoginCalls++
	f.LastEmail, f.LastPass = email, password
	return f.LoginSess, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, email, password, displayName string) error {
	f.RegisterCalls++
	f.LastRegEmail, f.LastRegName = email, displayName
	return f.RegisterErr
}

func (f *fakeAPI) ListFiles(ctx context.Context, ownerID string) ([]models.FileItem, error) {
	f.ListCalls++
	f.LastListOwner = ownerID
	if f.OnListFiles != nil {
		f.OnListFiles()
	}
	return f.ListRet, f.ListErr
}

func (f *fakeAPI) RequestUpload(ctx context.Context, fileName string) (models.UploadTicket, error) {
	f.TicketCalls++
	f.LastFileName = fileName
	return f.TicketRet, f.TicketErr
}

func (f *fakeAPI) PutObject(ctx context.Context, uploadURL, contentType string, body io.Reader) error {
	f.PutCalls++
	f.LastPutURL, f.LastPutType = uploadURL, contentType
	data, _ := io.ReadAll(body)
	f.LastPutBody = data
	return f.PutErr
}

func (f *fakeAPI) Analyze(ctx context.Context, key string) (json.RawMessage, error) {
	f.AnalyzeCalls++
	f.LastKey = key
	if f.OnAnalyze != nil {
		f.OnAnalyze()
	}
	return f.AnalyzeRet, f.AnalyzeErr
}

// ---- helpers ----

func emptyStore() *session.Store {
	return session.NewStore(session.NewMemoryKV())
}

func loggedInStore(t *testing.T, email string) *session.Store {
	t.Helper()
	st := emptyStore()
	st.Save(models.Session{Token: "tok-1", Identity: models.Identity{UserID: "u-1", Email: email}})
	return st
}

// ---- tests ----

func TestLogin_EmptyInputFailsFastWithoutRequest(t *testing.T) {
	f := &fakeAPI{}
	st := emptyStore()
	svc := NewAuthService(f, st)

	for _, tc := range []struct{ email, pass string }{
		{"", "secret"},
		{"alice@example.com", ""},
		{"   ", "secret"},
		{"alice@example.com", "  \t "},
	} {
		_, err := svc.Login(context.Background(), tc.email, tc.pass)
		require.ErrorIs(t, err, common.ErrValidation)
	}
	require.Zero(t, f.LoginCalls)
	_, ok := st.Load()
	require.False(t, ok)
}

func TestLogin_SuccessPersistsSession(t *testing.T) {
	f := &fakeAPI{LoginSess: models.Session{
		Token:    "tok-1",
		Identity: models.Identity{Email: "alice@example.com"},
	}}
	st := emptyStore()
	svc := NewAuthService(f, st)

	sess, err := svc.Login(context.Background(), " alice@example.com ", "secret")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", f.LastEmail)
	require.Equal(t, "secret", f.LastPass)
	require.Equal(t, "tok-1", sess.Token)

	stored, ok := st.Load()
	require.True(t, ok)
	require.Equal(t, sess, stored)
}

func TestLogin_BackendRejectionLeavesStoreAbsent(t *testing.T) {
	f := &fakeAPI{LoginErr: &common.APIError{Status: 401, Message: "Invalid credentials"}}
	st := emptyStore()
	svc := NewAuthService(f, st)

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	require.Contains(t, err.Error(), "Invalid credentials")

	_, ok := st.Load()
	require.False(t, ok)
}

func TestRegister_ValidatesAndTrims(t *testing.T) {
	f := &fakeAPI{}
	svc := NewAuthService(f, emptyStore())

	err := svc.Register(context.Background(), "", "pw", "Bob")
	require.ErrorIs(t, err, common.ErrValidation)
	require.Zero(t, f.RegisterCalls)

	require.NoError(t, svc.Register(context.Background(), " bob@example.com ", "pw", " Bob "))
	require.Equal(t, "bob@example.com", f.LastRegEmail)
	require.Equal(t, "Bob", f.LastRegName)
}

func TestLogout_ClearsSession(t *testing.T) {
	st := loggedInStore(t, "alice@example.com")
	svc := NewAuthService(&fakeAPI{}, st)

	require.NoError(t, svc.Logout(context.Background()))
	_, ok := st.Load()
	require.False(t, ok)
}

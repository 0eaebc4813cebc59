package services

import (
	"context"
	"testing"

	"github.com/avolkovs/wpcloud/internal/client/models"
	"github.com/avolkovs/wpcloud/internal/common"
	"github.com/stretchr/testify/require"
)

func TestList_FiltersForeignKeys(t *testing.T) {
	f := &fakeAPI{ListRet: []models.FileItem{
		{Key: "alice@example.com/cat.png", Size: 10},
		{Key: "bob@example.com/dog.png", Size: 20},
		{Key: "alice@example.com/holiday/beach.jpg"},
		{Key: "alice@example.comX/evil.png"},
		{Key: ""},
	}}
	svc := NewCatalogService(f, loggedInStore(t, "alice@example.com"))

	files, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", f.LastListOwner)
	require.Equal(t, []models.FileItem{
		{Key: "alice@example.com/cat.png", Size: 10},
		{Key: "alice@example.com/holiday/beach.jpg"},
	}, files)
}

func TestList_EmptyResultIsValid(t *testing.T) {
	f := &fakeAPI{ListRet: []models.FileItem{}}
	svc := NewCatalogService(f, loggedInStore(t, "alice@example.com"))

	files, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, files)
	require.Empty(t, files)
}

func TestList_RequiresSession(t *testing.T) {
	f := &fakeAPI{}
	svc := NewCatalogService(f, emptyStore())

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, common.ErrNoSession)
	require.Zero(t, f.ListCalls)
}

func TestList_RequiresUsableIdentity(t *testing.T) {
	st := emptyStore()
	st.Save(models.Session{Token: "tok-1"}) // token without identity
	f := &fakeAPI{}
	svc := NewCatalogService(f, st)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, common.ErrNoSession)
	require.Zero(t, f.ListCalls)
}

func TestList_NetworkFailure(t *testing.T) {
	f := &fakeAPI{ListErr: common.ErrUnavailable}
	svc := NewCatalogService(f, loggedInStore(t, "alice@example.com"))

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestList_IdempotentWithoutIntermediateUploads(t *testing.T) {
	f := &fakeAPI{ListRet: []models.FileItem{
		{Key: "alice@example.com/b.png"},
		{Key: "alice@example.com/a.png"},
	}}
	svc := NewCatalogService(f, loggedInStore(t, "alice@example.com"))

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestList_StaleResponseIsDiscarded(t *testing.T) {
	f := &fakeAPI{ListRet: []models.FileItem{{Key: "alice@example.com/a.png"}}}
	c := &catalogService{api: f, store: loggedInStore(t, "alice@example.com")}

	// A newer request starts while this response is still in flight.
	f.OnListFiles = func() { c.gen.Add(1) }

	_, err := c.List(context.Background())
	require.ErrorIs(t, err, common.ErrStaleResponse)
}

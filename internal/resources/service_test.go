package resources_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehublabs/warehub-backend/internal/resources"
	"github.com/warehublabs/warehub-backend/internal/storage"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/models"
	"github.com/warehublabs/warehub-backend/pkg/pagination"
)

func newClientService(t *testing.T) *resources.Service[models.Client, *models.Client] {
	t.Helper()
	store := storage.NewMemory[models.Client, *models.Client]("client")
	svc, err := resources.NewService(store, nil)
	require.NoError(t, err)
	return svc
}

func client(id, name string) models.Client {
	c := models.Client{Name: name, City: "Rotterdam"}
	c.ID = id
	return c
}

func TestNewServiceRequiresStore(t *testing.T) {
	_, err := resources.NewService[models.Client, *models.Client](nil, nil)
	require.Error(t, err)
}

func TestArchivedRecordRefusesMutation(t *testing.T) {
	ctx := context.Background()
	svc := newClientService(t)

	created, err := svc.Create(ctx, client("c1", "Acme BV"))
	require.NoError(t, err)

	_, err = svc.Archive(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Replace(ctx, created.ID, client("c1", "Renamed BV"))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidState, pkgerrors.As(err).Code())

	_, err = svc.Patch(ctx, created.ID, []byte(`{"name":"Renamed BV"}`))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidState, pkgerrors.As(err).Code())

	// the refused writes must not have leaked into the record
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme BV", got.Name)
	assert.True(t, got.Archived)
}

func TestUnarchiveReopensMutation(t *testing.T) {
	ctx := context.Background()
	svc := newClientService(t)

	created, err := svc.Create(ctx, client("c1", "Acme BV"))
	require.NoError(t, err)

	_, err = svc.Archive(ctx, created.ID)
	require.NoError(t, err)
	_, err = svc.Unarchive(ctx, created.ID)
	require.NoError(t, err)

	updated, err := svc.Replace(ctx, created.ID, client("c1", "Renamed BV"))
	require.NoError(t, err)
	assert.Equal(t, "Renamed BV", updated.Name)
	assert.False(t, updated.Archived)
}

func TestPatchDropsUnknownKeys(t *testing.T) {
	ctx := context.Background()
	svc := newClientService(t)

	created, err := svc.Create(ctx, client("c1", "Acme BV"))
	require.NoError(t, err)

	patched, err := svc.Patch(ctx, created.ID, []byte(`{"name":"Acme Holding","warehouse_rating":5}`))
	require.NoError(t, err)

	assert.Equal(t, "Acme Holding", patched.Name)
	assert.Equal(t, "Rotterdam", patched.City)
}

func TestPatchRejectsMalformedBody(t *testing.T) {
	ctx := context.Background()
	svc := newClientService(t)

	created, err := svc.Create(ctx, client("c1", "Acme BV"))
	require.NoError(t, err)

	_, err = svc.Patch(ctx, created.ID, []byte(`{"name":`))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestReplaceCannotSmuggleArchiveFlag(t *testing.T) {
	ctx := context.Background()
	svc := newClientService(t)

	created, err := svc.Create(ctx, client("c1", "Acme BV"))
	require.NoError(t, err)

	replacement := client("c1", "Acme BV")
	replacement.Archived = true
	updated, err := svc.Replace(ctx, created.ID, replacement)
	require.NoError(t, err)
	assert.False(t, updated.Archived)
}

func TestListPaginatesInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	svc := newClientService(t)

	for _, id := range []string{"c1", "c2", "c3"} {
		_, err := svc.Create(ctx, client(id, "Client "+id))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, pagination.Params{Page: 2, ItemsPerPage: 2})
	require.NoError(t, err)

	require.Len(t, page.Data, 1)
	assert.Equal(t, "c3", page.Data[0].ID)
	assert.Equal(t, 3, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.Pages)
}

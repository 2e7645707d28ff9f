package inventories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehublabs/warehub-backend/internal/inventories"
	"github.com/warehublabs/warehub-backend/internal/storage"
	"github.com/warehublabs/warehub-backend/pkg/models"
)

func newLedger(t *testing.T) (*inventories.Service, *inventories.Store) {
	t.Helper()
	store := storage.NewMemory[models.Inventory, *models.Inventory]("inventory")
	svc, err := inventories.NewService(store, nil)
	require.NoError(t, err)
	return svc, store
}

func inventory(id, itemID string, locations []string, onHand, ordered, allocated int) models.Inventory {
	inv := models.Inventory{
		ItemID:         itemID,
		Locations:      locations,
		TotalOnHand:    onHand,
		TotalOrdered:   ordered,
		TotalAllocated: allocated,
	}
	inv.ID = id
	return inv
}

func TestRecomputeDerivesCounters(t *testing.T) {
	inv := inventory("i1", "item-1", nil, 100, 10, 20)
	inv.TotalExpected = 999
	inv.TotalAvailable = -999

	inventories.Recompute(&inv)

	assert.Equal(t, 110, inv.TotalExpected)
	assert.Equal(t, 80, inv.TotalAvailable)
}

func TestRecomputeAllowsNegativeCounters(t *testing.T) {
	inv := inventory("i1", "item-1", nil, -5, 0, 10)

	inventories.Recompute(&inv)

	assert.Equal(t, -5, inv.TotalExpected)
	assert.Equal(t, -15, inv.TotalAvailable)
}

func TestCreateIgnoresClientSuppliedDerivedCounters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)

	candidate := inventory("i1", "item-1", []string{"loc-a"}, 40, 5, 15)
	candidate.TotalExpected = 7777
	candidate.TotalAvailable = 7777

	created, err := svc.Create(ctx, candidate)
	require.NoError(t, err)

	assert.Equal(t, 45, created.TotalExpected)
	assert.Equal(t, 25, created.TotalAvailable)
}

func TestPatchRecomputesDerivedCounters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)

	_, err := svc.Create(ctx, inventory("i1", "item-1", []string{"loc-a"}, 40, 5, 15))
	require.NoError(t, err)

	patched, err := svc.Patch(ctx, "i1", []byte(`{"total_on_hand":100,"total_expected":1}`))
	require.NoError(t, err)

	// total_expected is not a patchable field; the recomputed value wins
	assert.Equal(t, 100, patched.TotalOnHand)
	assert.Equal(t, 105, patched.TotalExpected)
	assert.Equal(t, 85, patched.TotalAvailable)
}

func TestForItemFiltersByItem(t *testing.T) {
	ctx := context.Background()
	svc, _ := newLedger(t)

	_, err := svc.Create(ctx, inventory("i1", "item-1", []string{"loc-a"}, 10, 0, 0))
	require.NoError(t, err)
	_, err = svc.Create(ctx, inventory("i2", "item-2", []string{"loc-a"}, 10, 0, 0))
	require.NoError(t, err)
	_, err = svc.Create(ctx, inventory("i3", "item-1", []string{"loc-b"}, 10, 0, 0))
	require.NoError(t, err)

	records := svc.ForItem(ctx, "item-1")
	require.Len(t, records, 2)
	assert.Equal(t, "i1", records[0].ID)
	assert.Equal(t, "i3", records[1].ID)
}

func TestApplyTransferMovesStockBetweenLocations(t *testing.T) {
	ctx := context.Background()
	svc, store := newLedger(t)

	_, err := svc.Create(ctx, inventory("src", "item-1", []string{"loc-a"}, 100, 10, 20))
	require.NoError(t, err)
	_, err = svc.Create(ctx, inventory("dst", "item-1", []string{"loc-b"}, 0, 0, 0))
	require.NoError(t, err)

	err = svc.ApplyTransfer(ctx, "loc-a", "loc-b", []models.ItemQuantity{{ItemID: "item-1", Amount: 15}})
	require.NoError(t, err)

	src, err := store.Get("src")
	require.NoError(t, err)
	assert.Equal(t, 85, src.TotalOnHand)
	assert.Equal(t, 95, src.TotalExpected)
	assert.Equal(t, 65, src.TotalAvailable)

	dst, err := store.Get("dst")
	require.NoError(t, err)
	assert.Equal(t, 15, dst.TotalOnHand)
	assert.Equal(t, 15, dst.TotalExpected)
	assert.Equal(t, 15, dst.TotalAvailable)
}

func TestApplyTransferSourceWinsWhenRecordHoldsBothLocations(t *testing.T) {
	ctx := context.Background()
	svc, store := newLedger(t)

	_, err := svc.Create(ctx, inventory("both", "item-1", []string{"loc-a", "loc-b"}, 50, 0, 0))
	require.NoError(t, err)

	err = svc.ApplyTransfer(ctx, "loc-a", "loc-b", []models.ItemQuantity{{ItemID: "item-1", Amount: 10}})
	require.NoError(t, err)

	got, err := store.Get("both")
	require.NoError(t, err)
	assert.Equal(t, 40, got.TotalOnHand)
}

func TestApplyTransferSkipsUnrelatedRecords(t *testing.T) {
	ctx := context.Background()
	svc, store := newLedger(t)

	_, err := svc.Create(ctx, inventory("elsewhere", "item-1", []string{"loc-c"}, 30, 0, 0))
	require.NoError(t, err)

	err = svc.ApplyTransfer(ctx, "loc-a", "loc-b", []models.ItemQuantity{{ItemID: "item-1", Amount: 10}})
	require.NoError(t, err)

	got, err := store.Get("elsewhere")
	require.NoError(t, err)
	assert.Equal(t, 30, got.TotalOnHand)
}

func TestApplyTransferMayDriveStockNegative(t *testing.T) {
	ctx := context.Background()
	svc, store := newLedger(t)

	_, err := svc.Create(ctx, inventory("src", "item-1", []string{"loc-a"}, 5, 0, 0))
	require.NoError(t, err)

	err = svc.ApplyTransfer(ctx, "loc-a", "loc-b", []models.ItemQuantity{{ItemID: "item-1", Amount: 20}})
	require.NoError(t, err)

	got, err := store.Get("src")
	require.NoError(t, err)
	assert.Equal(t, -15, got.TotalOnHand)
	assert.Equal(t, -15, got.TotalAvailable)
}

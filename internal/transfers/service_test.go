package transfers_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehublabs/warehub-backend/internal/inventories"
	"github.com/warehublabs/warehub-backend/internal/storage"
	"github.com/warehublabs/warehub-backend/internal/transfers"
	"github.com/warehublabs/warehub-backend/pkg/enums"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/models"
)

type fixture struct {
	transfers   *transfers.Store
	inventories *inventories.Store
	ledger      *inventories.Service
	engine      *transfers.Service
}

func newFixture(t *testing.T, invSnap storage.Snapshotter) fixture {
	t.Helper()

	transferStore := storage.NewMemory[models.Transfer, *models.Transfer]("transfer")
	inventoryStore, err := storage.Open[models.Inventory, *models.Inventory]("inventory", invSnap)
	require.NoError(t, err)

	ledger, err := inventories.NewService(inventoryStore, nil)
	require.NoError(t, err)
	engine, err := transfers.NewService(transferStore, ledger, nil)
	require.NoError(t, err)

	return fixture{
		transfers:   transferStore,
		inventories: inventoryStore,
		ledger:      ledger,
		engine:      engine,
	}
}

func (f fixture) seedInventory(t *testing.T, id, itemID string, locations []string, onHand, ordered, allocated int) {
	t.Helper()
	inv := models.Inventory{
		ItemID:         itemID,
		Locations:      locations,
		TotalOnHand:    onHand,
		TotalOrdered:   ordered,
		TotalAllocated: allocated,
	}
	inv.ID = id
	inventories.Recompute(&inv)
	_, err := f.inventories.Create(inv)
	require.NoError(t, err)
}

func (f fixture) seedTransfer(t *testing.T, id, from, to string, status enums.TransferStatus, items []models.ItemQuantity) {
	t.Helper()
	tr := models.Transfer{
		Reference:      "TR-" + id,
		TransferFrom:   from,
		TransferTo:     to,
		TransferStatus: status,
		Items:          items,
	}
	tr.ID = id
	_, err := f.transfers.Create(tr)
	require.NoError(t, err)
}

func TestCommitMovesStockAndMarksProcessed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.seedInventory(t, "src", "item-1", []string{"loc-a"}, 100, 10, 20)
	f.seedInventory(t, "dst", "item-1", []string{"loc-b"}, 0, 0, 0)
	f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusScheduled,
		[]models.ItemQuantity{{ItemID: "item-1", Amount: 15}})

	committed, err := f.engine.Commit(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, enums.TransferStatusProcessed, committed.TransferStatus)

	src, err := f.inventories.Get("src")
	require.NoError(t, err)
	assert.Equal(t, 85, src.TotalOnHand)
	assert.Equal(t, 95, src.TotalExpected)
	assert.Equal(t, 65, src.TotalAvailable)

	dst, err := f.inventories.Get("dst")
	require.NoError(t, err)
	assert.Equal(t, 15, dst.TotalOnHand)
}

func TestCommitTwiceIsRefused(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.seedInventory(t, "src", "item-1", []string{"loc-a"}, 100, 0, 0)
	f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusScheduled,
		[]models.ItemQuantity{{ItemID: "item-1", Amount: 10}})

	_, err := f.engine.Commit(ctx, "t1")
	require.NoError(t, err)

	_, err = f.engine.Commit(ctx, "t1")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidState, pkgerrors.As(err).Code())

	// the second attempt must not touch the ledger again
	src, err := f.inventories.Get("src")
	require.NoError(t, err)
	assert.Equal(t, 90, src.TotalOnHand)
}

func TestCommitConcurrentCallsApplyExactlyOnce(t *testing.T) {
	ctx := context.Background()

	for trial := 0; trial < 50; trial++ {
		f := newFixture(t, nil)

		f.seedInventory(t, "src", "item-1", []string{"loc-a"}, 100, 0, 0)
		f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusScheduled,
			[]models.ItemQuantity{{ItemID: "item-1", Amount: 10}})

		const callers = 4
		start := make(chan struct{})
		errs := make([]error, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, errs[i] = f.engine.Commit(ctx, "t1")
			}(i)
		}
		close(start)
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			require.Equal(t, pkgerrors.CodeInvalidState, pkgerrors.As(err).Code())
		}
		require.Equal(t, 1, succeeded, "exactly one commit may win the transfer")

		src, err := f.inventories.Get("src")
		require.NoError(t, err)
		require.Equal(t, 90, src.TotalOnHand, "losing commits must not touch the ledger")
	}
}

func TestCommitRefusesNonScheduledTransfer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusProcessed,
		[]models.ItemQuantity{{ItemID: "item-1", Amount: 10}})

	_, err := f.engine.Commit(ctx, "t1")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidState, pkgerrors.As(err).Code())
}

func TestCommitRefusesArchivedTransfer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.seedInventory(t, "src", "item-1", []string{"loc-a"}, 100, 0, 0)
	f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusScheduled,
		[]models.ItemQuantity{{ItemID: "item-1", Amount: 10}})
	_, err := f.transfers.Archive("t1")
	require.NoError(t, err)

	_, err = f.engine.Commit(ctx, "t1")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeInvalidState, pkgerrors.As(err).Code())

	src, err := f.inventories.Get("src")
	require.NoError(t, err)
	assert.Equal(t, 100, src.TotalOnHand)
}

func TestCommitMissingTransfer(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	_, err := f.engine.Commit(ctx, "ghost")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestCommitSourceWinsOnSharedLocation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.seedInventory(t, "both", "item-1", []string{"loc-a", "loc-b"}, 50, 0, 0)
	f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusScheduled,
		[]models.ItemQuantity{{ItemID: "item-1", Amount: 10}})

	_, err := f.engine.Commit(ctx, "t1")
	require.NoError(t, err)

	got, err := f.inventories.Get("both")
	require.NoError(t, err)
	assert.Equal(t, 40, got.TotalOnHand)
}

func TestCommitMayDriveStockNegative(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	f.seedInventory(t, "src", "item-1", []string{"loc-a"}, 5, 0, 0)
	f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusScheduled,
		[]models.ItemQuantity{{ItemID: "item-1", Amount: 20}})

	_, err := f.engine.Commit(ctx, "t1")
	require.NoError(t, err)

	src, err := f.inventories.Get("src")
	require.NoError(t, err)
	assert.Equal(t, -15, src.TotalOnHand)
}

type failingSnapshot struct{}

func (failingSnapshot) Load() ([]byte, error) { return nil, nil }
func (failingSnapshot) Write([]byte) error    { return errors.New("disk full") }

func TestCommitReportsPartialApplication(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, failingSnapshot{})

	f.seedInventory(t, "src", "item-1", []string{"loc-a"}, 100, 0, 0)
	f.seedTransfer(t, "t1", "loc-a", "loc-b", enums.TransferStatusScheduled,
		[]models.ItemQuantity{{ItemID: "item-1", Amount: 10}})

	_, err := f.engine.Commit(ctx, "t1")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodePartialCommit, pkgerrors.As(err).Code())

	// the transfer is still spent and the in-memory ledger applied
	tr, err := f.transfers.Get("t1")
	require.NoError(t, err)
	assert.Equal(t, enums.TransferStatusProcessed, tr.TransferStatus)

	src, err := f.inventories.Get("src")
	require.NoError(t, err)
	assert.Equal(t, 90, src.TotalOnHand)
}

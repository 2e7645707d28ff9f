package inventories

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/warehublabs/warehub-backend/internal/resources"
	"github.com/warehublabs/warehub-backend/internal/storage"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/models"
)

// Store is the inventory collection the ledger operates on.
type Store = storage.Store[models.Inventory, *models.Inventory]

// Recompute derives the dependent counters from the authoritative ones:
// expected = on hand + ordered, available = on hand - allocated. Negative
// results are legal; they represent backorder and overdraft states.
func Recompute(inv *models.Inventory) {
	inv.TotalExpected = inv.TotalOnHand + inv.TotalOrdered
	inv.TotalAvailable = inv.TotalOnHand - inv.TotalAllocated
}

// Service is the inventory ledger: resource CRUD plus the derived-counter
// discipline and the transfer walk. Every write path, direct update or
// transfer commit, funnels through Recompute so caller-supplied derived
// values never stick.
type Service struct {
	*resources.Service[models.Inventory, *models.Inventory]
	store *Store
}

// NewService builds the ledger over the inventory store.
func NewService(store *Store, logg *logger.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("inventory store required")
	}
	base, err := resources.NewService(
		store,
		logg,
		resources.WithNormalize[models.Inventory, *models.Inventory](Recompute),
	)
	if err != nil {
		return nil, err
	}
	return &Service{Service: base, store: store}, nil
}

// ForItem returns every inventory record referencing the item, regardless of
// location.
func (s *Service) ForItem(ctx context.Context, itemID string) []models.Inventory {
	return s.Filter(ctx, func(inv models.Inventory) bool {
		return inv.ItemID == itemID
	})
}

// ApplyTransfer walks the transfer lines against the ledger under a single
// store lock. Per line, every record referencing the item is checked: a
// record holding the source location is decremented, otherwise a record
// holding the destination is incremented; the source branch is evaluated
// first, so a record holding both only gets the decrement. Records holding
// neither stay untouched. Failed writes are collected, not rolled back; the
// aggregate error reports every line that could not be applied.
func (s *Service) ApplyTransfer(ctx context.Context, from, to string, lines []models.ItemQuantity) error {
	var errs []error

	txErr := s.store.Tx(func(tx *storage.Tx[models.Inventory, *models.Inventory]) error {
		for _, line := range lines {
			records := tx.Filter(func(inv models.Inventory) bool {
				return inv.ItemID == line.ItemID
			})
			for _, inv := range records {
				switch {
				case inv.HoldsLocation(from):
					inv.TotalOnHand -= line.Amount
				case inv.HoldsLocation(to):
					inv.TotalOnHand += line.Amount
				default:
					continue
				}
				Recompute(&inv)
				if _, err := tx.Update(inv.ID, inv); err != nil {
					errs = append(errs, fmt.Errorf("item %s, inventory %s: %w", line.ItemID, inv.ID, err))
				}
			}
		}
		return nil
	})
	if txErr != nil {
		errs = append(errs, txErr)
	}

	return multierr.Combine(errs...)
}

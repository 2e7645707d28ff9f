package transfers

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/warehublabs/warehub-backend/internal/inventories"
	"github.com/warehublabs/warehub-backend/internal/resources"
	"github.com/warehublabs/warehub-backend/internal/storage"
	"github.com/warehublabs/warehub-backend/pkg/enums"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/models"
)

// Store is the transfer collection the commit engine operates on.
type Store = storage.Store[models.Transfer, *models.Transfer]

// NewResource builds the CRUD service for transfers. Creation forces the
// status to Scheduled and a replace carries the stored status over, so the
// status only ever moves through create and Commit.
func NewResource(store *Store, logg *logger.Logger) (*resources.Service[models.Transfer, *models.Transfer], error) {
	return resources.NewService(
		store,
		logg,
		resources.WithOnCreate[models.Transfer, *models.Transfer](func(t *models.Transfer) {
			t.TransferStatus = enums.TransferStatusScheduled
		}),
		resources.WithOnReplace[models.Transfer, *models.Transfer](func(orig models.Transfer, repl *models.Transfer) {
			repl.TransferStatus = orig.TransferStatus
		}),
	)
}

// Service is the transfer commit engine. CRUD on transfers goes through the
// shared resource service; Commit is the one operation with cross-store
// semantics, so it lives here.
type Service struct {
	transfers   *Store
	inventories *inventories.Service
	logg        *logger.Logger
}

// NewService builds the commit engine.
func NewService(transfers *Store, ledger *inventories.Service, logg *logger.Logger) (*Service, error) {
	if transfers == nil {
		return nil, fmt.Errorf("transfer store required")
	}
	if ledger == nil {
		return nil, fmt.Errorf("inventory ledger required")
	}
	return &Service{
		transfers:   transfers,
		inventories: ledger,
		logg:        logg,
	}, nil
}

// Commit applies a scheduled transfer to the inventory ledger and advances
// its status to Processed. The status check and the flip to Processed run
// inside one transfer-store transaction, so of any number of concurrent
// commits exactly one claims the transfer; the rest see INVALID_STATE and
// never touch the ledger.
//
// Stock application is at-least-once, not transactional: lines that fail
// leave earlier lines applied, the transfer is still marked Processed, and
// the caller gets a PARTIAL_COMMIT error naming every failed line.
func (s *Service) Commit(ctx context.Context, id string) (models.Transfer, error) {
	var zero models.Transfer

	committed, err := s.claim(id)
	if err != nil {
		return zero, err
	}

	var failures []error
	if err := s.inventories.ApplyTransfer(ctx, committed.TransferFrom, committed.TransferTo, committed.Items); err != nil {
		failures = append(failures, multierr.Errors(err)...)
	}

	if err := s.inventories.Persist(ctx); err != nil {
		failures = append(failures, fmt.Errorf("flush inventories: %w", err))
	}
	if err := s.transfers.Persist(); err != nil {
		failures = append(failures, fmt.Errorf("flush transfers: %w", err))
	}

	if len(failures) > 0 {
		details := make([]string, len(failures))
		for i, f := range failures {
			details[i] = f.Error()
		}
		if s.logg != nil {
			s.logg.Warn(logCtx(ctx, s.logg, id, len(failures)), "transfer commit applied partially")
		}
		return committed, pkgerrors.Wrap(pkgerrors.CodePartialCommit, multierr.Combine(failures...), "transfer applied partially").
			WithDetails(map[string]any{
				"transfer_id": id,
				"failures":    details,
			})
	}

	if s.logg != nil {
		s.logg.Info(s.logg.WithEntityID(ctx, id), "transfer committed")
	}
	return committed, nil
}

// claim flips the transfer from Scheduled to Processed in one store
// transaction. Returning the flipped record makes the claim the single point
// where a commit can win the transfer.
func (s *Service) claim(id string) (models.Transfer, error) {
	var claimed models.Transfer
	err := s.transfers.Tx(func(tx *storage.Tx[models.Transfer, *models.Transfer]) error {
		transfer, err := tx.Get(id)
		if err != nil {
			return err
		}
		if transfer.Archived {
			return pkgerrors.New(pkgerrors.CodeInvalidState, "transfer is archived")
		}
		if transfer.TransferStatus != enums.TransferStatusScheduled {
			return pkgerrors.New(pkgerrors.CodeInvalidState, "transfer is not scheduled").
				WithDetails(map[string]any{"transfer_status": transfer.TransferStatus})
		}

		transfer.TransferStatus = enums.TransferStatusProcessed
		claimed, err = tx.Update(id, transfer)
		return err
	})
	if err != nil {
		var zero models.Transfer
		return zero, err
	}
	return claimed, nil
}

func logCtx(ctx context.Context, logg *logger.Logger, id string, failureCount int) context.Context {
	return logg.WithFields(ctx, map[string]any{
		"entity_id":     id,
		"failure_count": failureCount,
	})
}

package resources

import (
	"context"
	"fmt"

	"github.com/warehublabs/warehub-backend/internal/storage"
	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/logger"
	"github.com/warehublabs/warehub-backend/pkg/models"
	"github.com/warehublabs/warehub-backend/pkg/pagination"
)

// Option customizes how a resource service treats records on their way into
// the store.
type Option[T any, PT models.Entity[T]] func(*Service[T, PT])

// WithNormalize runs fn on every record before it is written, create and
// update alike. The ledger uses this to recompute derived counters.
func WithNormalize[T any, PT models.Entity[T]](fn func(PT)) Option[T, PT] {
	return func(s *Service[T, PT]) {
		s.normalize = fn
	}
}

// WithOnCreate runs fn only when a record is first created.
func WithOnCreate[T any, PT models.Entity[T]](fn func(PT)) Option[T, PT] {
	return func(s *Service[T, PT]) {
		s.onCreate = fn
	}
}

// WithOnReplace runs fn with the stored record and the incoming replacement
// before a full or partial update, so server-managed fields survive the
// replace.
func WithOnReplace[T any, PT models.Entity[T]](fn func(orig T, repl PT)) Option[T, PT] {
	return func(s *Service[T, PT]) {
		s.onReplace = fn
	}
}

// Service wraps one entity store with the behavior every resource shares:
// pagination, archive gating on mutation, the allow-listed patch merge and a
// snapshot flush after each accepted write.
type Service[T any, PT models.Entity[T]] struct {
	store     *storage.Store[T, PT]
	logg      *logger.Logger
	normalize func(PT)
	onCreate  func(PT)
	onReplace func(orig T, repl PT)
}

// NewService builds a resource service over the given store.
func NewService[T any, PT models.Entity[T]](store *storage.Store[T, PT], logg *logger.Logger, opts ...Option[T, PT]) (*Service[T, PT], error) {
	if store == nil {
		return nil, fmt.Errorf("entity store required")
	}
	s := &Service[T, PT]{store: store, logg: logg}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// List returns one page of records in insertion order.
func (s *Service[T, PT]) List(ctx context.Context, params pagination.Params) (pagination.Page[T], error) {
	return pagination.Paginate(s.store.List(), params), nil
}

// Filter returns all records matching pred, in insertion order.
func (s *Service[T, PT]) Filter(ctx context.Context, pred func(T) bool) []T {
	var out []T
	for _, rec := range s.store.List() {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Get returns the record with the given id. Archived records stay readable.
func (s *Service[T, PT]) Get(ctx context.Context, id string) (T, error) {
	return s.store.Get(id)
}

// Create stores a new record and flushes the snapshot.
func (s *Service[T, PT]) Create(ctx context.Context, candidate T) (T, error) {
	rec := PT(&candidate)
	if s.onCreate != nil {
		s.onCreate(rec)
	}
	if s.normalize != nil {
		s.normalize(rec)
	}

	created, err := s.store.Create(candidate)
	if err != nil {
		var zero T
		return zero, err
	}
	return created, s.persist(ctx)
}

// Replace swaps the full record, refusing when the target is archived.
func (s *Service[T, PT]) Replace(ctx context.Context, id string, replacement T) (T, error) {
	var out T
	err := s.store.Tx(func(tx *storage.Tx[T, PT]) error {
		existing, err := tx.Get(id)
		if err != nil {
			return err
		}
		if err := s.ensureMutable(existing); err != nil {
			return err
		}

		if s.onReplace != nil {
			s.onReplace(existing, PT(&replacement))
		}
		if s.normalize != nil {
			s.normalize(PT(&replacement))
		}

		out, err = tx.Update(id, replacement)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, s.persist(ctx)
}

// Patch merges a partial payload into a copy of the stored record and runs
// it through the same replace path, so gating and timestamp refresh apply
// identically. Unrecognized keys are dropped, not rejected.
func (s *Service[T, PT]) Patch(ctx context.Context, id string, patch []byte) (T, error) {
	var out T
	err := s.store.Tx(func(tx *storage.Tx[T, PT]) error {
		existing, err := tx.Get(id)
		if err != nil {
			return err
		}
		if err := s.ensureMutable(existing); err != nil {
			return err
		}

		merged := existing
		if err := PT(&merged).MergePatch(patch); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid patch payload")
		}
		if s.onReplace != nil {
			s.onReplace(existing, PT(&merged))
		}
		if s.normalize != nil {
			s.normalize(PT(&merged))
		}

		out, err = tx.Update(id, merged)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, s.persist(ctx)
}

// Archive soft-deletes the record.
func (s *Service[T, PT]) Archive(ctx context.Context, id string) (T, error) {
	archived, err := s.store.Archive(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return archived, s.persist(ctx)
}

// Unarchive restores an archived record.
func (s *Service[T, PT]) Unarchive(ctx context.Context, id string) (T, error) {
	restored, err := s.store.Unarchive(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return restored, s.persist(ctx)
}

// Delete hard-removes the record. Only wired for resources without the
// archive flag.
func (s *Service[T, PT]) Delete(ctx context.Context, id string) error {
	if err := s.store.Remove(id); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Persist flushes the backing store. Exposed for callers that batch writes
// outside the per-operation flush, like the transfer commit engine.
func (s *Service[T, PT]) Persist(ctx context.Context) error {
	return s.store.Persist()
}

func (s *Service[T, PT]) ensureMutable(existing T) error {
	if PT(&existing).Metadata().Archived {
		return pkgerrors.New(pkgerrors.CodeInvalidState, s.store.Name()+" is archived")
	}
	return nil
}

func (s *Service[T, PT]) persist(ctx context.Context) error {
	if err := s.store.Persist(); err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "snapshot flush failed", err)
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persisting "+s.store.Name())
	}
	return nil
}

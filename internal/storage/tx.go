package storage

import "github.com/warehublabs/warehub-backend/pkg/models"

// Tx exposes the store's read-modify-write primitives while the caller
// already holds the write lock. Only Store.Tx hands these out.
type Tx[T any, PT models.Entity[T]] struct {
	s *Store[T, PT]
}

// Get returns the record with the given id.
func (tx *Tx[T, PT]) Get(id string) (T, error) {
	rec, err := tx.s.getLocked(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return *rec, nil
}

// Update replaces the record in place, with the same metadata discipline as
// Store.Update.
func (tx *Tx[T, PT]) Update(id string, replacement T) (T, error) {
	return tx.s.updateLocked(id, replacement)
}

// Filter returns copies of all records matching pred, in insertion order.
func (tx *Tx[T, PT]) Filter(pred func(T) bool) []T {
	var out []T
	for _, rec := range tx.s.recs {
		if pred(*rec) {
			out = append(out, *rec)
		}
	}
	return out
}

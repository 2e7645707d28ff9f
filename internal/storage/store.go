package storage

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/warehublabs/warehub-backend/pkg/errors"
	"github.com/warehublabs/warehub-backend/pkg/models"
)

// Store is an in-memory collection of one entity type, keyed by id and kept
// in insertion order. Mutations are serialized behind a write lock; reads
// take the read lock. Persist flushes the whole collection to the snapshot
// and is invoked explicitly by callers so several writes in one request
// coalesce into a single flush.
type Store[T any, PT models.Entity[T]] struct {
	mu   sync.RWMutex
	name string
	recs []PT
	idx  map[string]int
	snap Snapshotter
	now  func() time.Time
}

// Open builds a store named after its resource and loads the snapshot.
func Open[T any, PT models.Entity[T]](name string, snap Snapshotter) (*Store[T, PT], error) {
	s := &Store[T, PT]{
		name: name,
		idx:  map[string]int{},
		snap: snap,
		now:  time.Now,
	}
	if snap == nil {
		return s, nil
	}

	data, err := snap.Load()
	if err != nil {
		return nil, fmt.Errorf("loading %s snapshot: %w", name, err)
	}
	if len(data) == 0 {
		return s, nil
	}

	var loaded []T
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("decoding %s snapshot: %w", name, err)
	}
	for i := range loaded {
		rec := PT(&loaded[i])
		id := rec.Metadata().ID
		if id == "" {
			return nil, fmt.Errorf("%s snapshot: record %d has no id", name, i)
		}
		if _, exists := s.idx[id]; exists {
			return nil, fmt.Errorf("%s snapshot: duplicate id %q", name, id)
		}
		s.idx[id] = len(s.recs)
		s.recs = append(s.recs, rec)
	}
	return s, nil
}

// NewMemory builds a store without a snapshot backing, for tests and tools.
func NewMemory[T any, PT models.Entity[T]](name string) *Store[T, PT] {
	s, _ := Open[T, PT](name, nil)
	return s
}

// Name returns the resource name the store was opened with.
func (s *Store[T, PT]) Name() string {
	return s.name
}

// Len returns the number of records, archived ones included.
func (s *Store[T, PT]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}

// List returns all records in insertion order. Archived records stay
// listable; only mutation is gated on the archive flag.
func (s *Store[T, PT]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.recs))
	for i, rec := range s.recs {
		out[i] = *rec
	}
	return out
}

// Get returns the record with the given id.
func (s *Store[T, PT]) Get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, err := s.getLocked(id)
	if err != nil {
		var zero T
		return zero, err
	}
	return *rec, nil
}

// Create appends a new record. The id must be unused; an empty id is
// assigned a fresh UUID. Timestamps always come from the store clock and the
// archive flag starts cleared, whatever the candidate carried.
func (s *Store[T, PT]) Create(candidate T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := PT(&candidate)
	meta := rec.Metadata()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if _, exists := s.idx[meta.ID]; exists {
		var zero T
		return zero, pkgerrors.New(pkgerrors.CodeConflict, s.name+" id already exists")
	}

	now := s.now()
	meta.CreatedAt = now
	meta.UpdatedAt = now
	meta.Archived = false

	s.idx[meta.ID] = len(s.recs)
	s.recs = append(s.recs, rec)
	return candidate, nil
}

// Update replaces the record at its original position. The stored id and
// created_at survive; updated_at is refreshed; the archive flag is carried
// over so a full replace cannot smuggle an archive transition.
func (s *Store[T, PT]) Update(id string, replacement T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked(id, replacement)
}

// Remove hard-deletes the record. Resources with soft-delete never call
// this; it exists for reference data and shipments.
func (s *Store[T, PT]) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.idx[id]
	if !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, s.name+" not found")
	}
	s.recs = append(s.recs[:idx], s.recs[idx+1:]...)
	delete(s.idx, id)
	for i := idx; i < len(s.recs); i++ {
		s.idx[s.recs[i].Metadata().ID] = i
	}
	return nil
}

// Persist flushes the full collection to the snapshot.
func (s *Store[T, PT]) Persist() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistLocked()
}

// Tx runs fn with the write lock held so a multi-record read-modify-write
// walk observes and produces a consistent collection.
func (s *Store[T, PT]) Tx(fn func(tx *Tx[T, PT]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx[T, PT]{s: s})
}

func (s *Store[T, PT]) getLocked(id string) (PT, error) {
	idx, ok := s.idx[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, s.name+" not found")
	}
	return s.recs[idx], nil
}

func (s *Store[T, PT]) updateLocked(id string, replacement T) (T, error) {
	var zero T
	idx, ok := s.idx[id]
	if !ok {
		return zero, pkgerrors.New(pkgerrors.CodeNotFound, s.name+" not found")
	}

	orig := s.recs[idx].Metadata()
	rec := PT(&replacement)
	meta := rec.Metadata()
	meta.ID = id
	meta.CreatedAt = orig.CreatedAt
	meta.Archived = orig.Archived
	meta.UpdatedAt = s.now()

	s.recs[idx] = rec
	return replacement, nil
}

func (s *Store[T, PT]) persistLocked() error {
	if s.snap == nil {
		return nil
	}
	records := s.recs
	if records == nil {
		records = []PT{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", s.name, err)
	}
	if err := s.snap.Write(data); err != nil {
		return fmt.Errorf("writing %s snapshot: %w", s.name, err)
	}
	return nil
}

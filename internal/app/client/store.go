package client

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slog"
)

// snapshot is one loaded version of a collection. It is never mutated after
// being published.
type snapshot[T any] struct {
	items    []T
	seq      uint64
	revision uint64
}

// Store holds the latest loaded version of one remote collection.
// Reads never block; mutations are serialized and each successful one is
// followed by a full reload.
type Store[T any] struct {
	name      string
	remote    Remote
	normalize func(Raw) T
	idOf      func(T) int
	log       *slog.Logger

	current atomic.Pointer[snapshot[T]]
	seq     atomic.Uint64

	applyMu sync.Mutex
	writeMu sync.Mutex
}

func NewStore[T any](name string, remote Remote, normalize func(Raw) T, idOf func(T) int, log *slog.Logger) *Store[T] {
	return &Store[T]{
		name:      name,
		remote:    remote,
		normalize: normalize,
		idOf:      idOf,
		log:       log.With("component", "store", "collection", name),
	}
}

// Load fetches the whole collection and replaces the current items.
// On failure the previous items are kept. A load that finishes after a
// later-started one has been applied is dropped.
func (s *Store[T]) Load(ctx context.Context) error {
	seq := s.seq.Add(1)

	raws, err := s.remote.FetchAll(ctx)
	if err != nil {
		s.log.Error("failed to load collection", "error", err)
		return fmt.Errorf("load %s: %w", s.name, err)
	}

	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		items = append(items, s.normalize(raw))
	}

	if !s.apply(seq, items) {
		s.log.Debug("discarded stale load", "seq", seq)
		return nil
	}

	s.log.Debug("collection loaded", "items", len(items), "seq", seq)
	return nil
}

func (s *Store[T]) apply(seq uint64, items []T) bool {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	var revision uint64
	if cur := s.current.Load(); cur != nil {
		if cur.seq > seq {
			return false
		}
		revision = cur.revision
	}

	s.current.Store(&snapshot[T]{items: items, seq: seq, revision: revision + 1})
	return true
}

// Items returns a copy of the current items in server order.
func (s *Store[T]) Items() []T {
	cur := s.current.Load()
	if cur == nil {
		return []T{}
	}
	return slices.Clone(cur.items)
}

// Get returns the item with the given id from the current snapshot.
func (s *Store[T]) Get(id int) (T, bool) {
	var zero T
	cur := s.current.Load()
	if cur == nil {
		return zero, false
	}
	for _, item := range cur.items {
		if s.idOf(item) == id {
			return item, true
		}
	}
	return zero, false
}

// Loaded reports whether at least one load has succeeded.
func (s *Store[T]) Loaded() bool {
	return s.current.Load() != nil
}

// Revision increases by one with every applied load.
func (s *Store[T]) Revision() uint64 {
	if cur := s.current.Load(); cur != nil {
		return cur.revision
	}
	return 0
}

func (s *Store[T]) Create(ctx context.Context, payload any) (T, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var zero T
	raw, err := s.remote.Create(ctx, payload)
	if err != nil {
		s.log.Error("create failed", "error", err)
		return zero, fmt.Errorf("create %s: %w", s.name, err)
	}

	created := s.normalize(raw)
	s.log.Info("record created", "id", s.idOf(created))

	return created, s.reload(ctx)
}

func (s *Store[T]) Update(ctx context.Context, id int, payload any) (T, error) {
	var zero T
	if id <= 0 {
		return zero, fmt.Errorf("update %s: %w: id %d", s.name, ErrInvalidInput, id)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, err := s.remote.Update(ctx, id, payload)
	if err != nil {
		s.log.Error("update failed", "id", id, "error", err)
		return zero, fmt.Errorf("update %s %d: %w", s.name, id, err)
	}

	updated := s.normalize(raw)
	if s.idOf(updated) == 0 {
		// bare acknowledgements carry no record
		updated, _ = s.Get(id)
	}
	s.log.Info("record updated", "id", id)

	if err := s.reload(ctx); err != nil {
		return updated, err
	}
	if fresh, ok := s.Get(id); ok {
		updated = fresh
	}
	return updated, nil
}

func (s *Store[T]) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("delete %s: %w: id %d", s.name, ErrInvalidInput, id)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.remote.Remove(ctx, id); err != nil {
		s.log.Error("delete failed", "id", id, "error", err)
		return fmt.Errorf("delete %s %d: %w", s.name, id, err)
	}
	s.log.Info("record deleted", "id", id)

	return s.reload(ctx)
}

func (s *Store[T]) reload(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return nil
}

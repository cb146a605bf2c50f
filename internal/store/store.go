// Package store holds the application's reactive state containers and the
// design and template state built on them.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"reviewdesk/internal/debug"
	apperrors "reviewdesk/internal/errors"
	"reviewdesk/internal/kv"
)

// Persister loads and saves a state value.
type Persister[T any] interface {
	Load(ctx context.Context) (T, error)
	Save(ctx context.Context, v T) error
}

// BlobPersister stores a state value as JSON under one key of a BlobStore.
type BlobPersister[T any] struct {
	blobs kv.BlobStore
	key   string
}

// NewBlobPersister returns a persister writing to key.
func NewBlobPersister[T any](blobs kv.BlobStore, key string) *BlobPersister[T] {
	return &BlobPersister[T]{blobs: blobs, key: key}
}

func (p *BlobPersister[T]) Load(ctx context.Context) (T, error) {
	var v T
	raw, err := p.blobs.Get(ctx, p.key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, apperrors.New(apperrors.CodeDecodeFailed, "decode "+p.key, err)
	}
	return v, nil
}

func (p *BlobPersister[T]) Save(ctx context.Context, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return apperrors.New(apperrors.CodeStorageFailed, "encode "+p.key, err)
	}
	return p.blobs.Put(ctx, p.key, raw)
}

// Store is a mutex-guarded state value with change subscribers. Subscribers
// run after the lock is released, in subscription order.
type Store[T any] struct {
	mu        sync.Mutex
	state     T
	persist   Persister[T]
	subs      map[int]func(T)
	order     []int
	nextSubID int
}

// Load builds a store from the persisted value. Missing or undecodable data
// falls back to defaults; validate, when non-nil, may also reject a loaded
// value. A nil persister keeps the state in memory only.
func Load[T any](ctx context.Context, defaults T, p Persister[T], validate func(T) error) *Store[T] {
	s := &Store[T]{state: defaults, persist: p, subs: make(map[int]func(T))}
	if p == nil {
		return s
	}
	v, err := p.Load(ctx)
	if err == nil && validate != nil {
		err = validate(v)
	}
	if err != nil {
		if !apperrors.IsCode(err, apperrors.CodeNotFound) {
			debug.Event(debug.CatStore, "discarding persisted state", err, nil)
		}
		return s
	}
	s.state = v
	return s
}

// Snapshot returns the current value.
func (s *Store[T]) Snapshot() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update applies fn to the state, persists the result and notifies
// subscribers. The in-memory change stands even when persisting fails; the
// persist error is returned.
func (s *Store[T]) Update(ctx context.Context, fn func(*T)) error {
	s.mu.Lock()
	next := s.state
	fn(&next)
	s.state = next
	subs := s.subscribers()
	s.mu.Unlock()

	var err error
	if s.persist != nil {
		if err = s.persist.Save(ctx, next); err != nil {
			debug.Event(debug.CatStore, "persist failed", err, nil)
		}
	}
	for _, fn := range subs {
		fn(next)
	}
	return err
}

// Subscribe registers fn for change notifications and returns a func that
// removes it.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.order = append(s.order, id)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store[T]) subscribers() []func(T) {
	out := make([]func(T), 0, len(s.subs))
	live := s.order[:0]
	for _, id := range s.order {
		if fn, ok := s.subs[id]; ok {
			out = append(out, fn)
			live = append(live, id)
		}
	}
	s.order = live
	return out
}

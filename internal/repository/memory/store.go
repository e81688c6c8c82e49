package memory

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"ai-counsellor-be/internal/entity"

	"github.com/google/uuid"
)

var ErrDuplicate = errors.New("memory: duplicate key")

// Store keeps every table in process memory. Writers are serialized by a single
// semaphore, readers outside a transaction see the last committed dataset.
type Store struct {
	mu    sync.RWMutex
	txSem chan struct{}
	data  *dataset
	now   func() time.Time
}

type dataset struct {
	profiles     map[uuid.UUID]entity.Profile
	universities []entity.University
	shortlist    []entity.ShortlistEntry
	tasks        []entity.Task
	messages     []entity.ConversationMessage
	audits       []entity.ActionAudit
}

func NewStore() *Store {
	return &Store{
		txSem: make(chan struct{}, 1),
		data:  &dataset{profiles: map[uuid.UUID]entity.Profile{}},
		now:   time.Now,
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		profiles:     make(map[uuid.UUID]entity.Profile, len(d.profiles)),
		universities: slices.Clone(d.universities),
		shortlist:    slices.Clone(d.shortlist),
		tasks:        slices.Clone(d.tasks),
		messages:     slices.Clone(d.messages),
		audits:       slices.Clone(d.audits),
	}
	for k, v := range d.profiles {
		c.profiles[k] = v
	}
	return c
}

func (s *Store) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.txSem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.txSem
}

// access is the view a repository works against: either the committed dataset or the
// private copy of an open transaction.
type access interface {
	read(fn func(d *dataset))
	write(ctx context.Context, fn func(d *dataset) error) error
	now() time.Time
}

type committed struct {
	store *Store
}

func (c committed) read(fn func(d *dataset)) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	fn(c.store.data)
}

func (c committed) write(ctx context.Context, fn func(d *dataset) error) error {
	if err := c.store.acquire(ctx); err != nil {
		return err
	}
	defer c.store.release()

	next := c.store.data.clone()
	if err := fn(next); err != nil {
		return err
	}
	c.store.mu.Lock()
	c.store.data = next
	c.store.mu.Unlock()
	return nil
}

func (c committed) now() time.Time {
	return c.store.now()
}

type pending struct {
	store *Store
	data  *dataset
}

func (p pending) read(fn func(d *dataset)) {
	fn(p.data)
}

func (p pending) write(_ context.Context, fn func(d *dataset) error) error {
	return fn(p.data)
}

func (p pending) now() time.Time {
	return p.store.now()
}

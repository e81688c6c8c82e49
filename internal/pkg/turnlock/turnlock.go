// Package turnlock serializes conversational turns per student.
package turnlock

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Locker hands out one turn at a time per key. Release must be called exactly once.
type Locker interface {
	Acquire(ctx context.Context, key uuid.UUID) (release func(), err error)
}

type slot struct {
	ch   chan struct{}
	refs int
}

// Local is an in-process keyed mutex. Slots are dropped once nobody holds or waits on
// them, so memory stays bounded by the number of concurrent students.
type Local struct {
	mu    sync.Mutex
	slots map[uuid.UUID]*slot
}

func NewLocal() *Local {
	return &Local{slots: make(map[uuid.UUID]*slot)}
}

func (l *Local) Acquire(ctx context.Context, key uuid.UUID) (func(), error) {
	l.mu.Lock()
	s, ok := l.slots[key]
	if !ok {
		s = &slot{ch: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	l.mu.Unlock()

	select {
	case s.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.ch
			l.unref(key, s)
		})
	}, nil
}

func (l *Local) unref(key uuid.UUID, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

// size reports the number of live slots.
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

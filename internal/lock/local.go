package lock

import (
	"context"
	"sync"
)

// Local serializes holders of the same resource within one process.
type Local struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func NewLocal() *Local {
	return &Local{slots: make(map[string]chan struct{})}
}

func (l *Local) Lock(ctx context.Context, resource string) (func(), error) {
	slot := l.slot(resource)

	select {
	case slot <- struct{}{}:
		var once sync.Once
		return func() { once.Do(func() { <-slot }) }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Local) slot(resource string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.slots[resource]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[resource] = slot
	}

	return slot
}

// Noop leaves read-then-write unguarded; concurrent uploads may race.
type Noop struct{}

func (Noop) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

// Package recent keeps the bounded list of recently played games.
package recent

import (
	"container/list"
	"context"
	"sync"
	"sync/atomic"
)

const defaultCapacity = 12

// List records played game ids, most recent first.
type List interface {
	// Touch moves id to the front, inserting it when absent. When the list is
	// full the least recently played id is evicted. It reports whether an
	// eviction happened.
	Touch(ctx context.Context, id string) bool

	// Remove drops id from the list. It reports whether id was present.
	Remove(ctx context.Context, id string) bool

	// IDs returns a snapshot, most recent first.
	IDs() []string

	// Restore replaces the contents with ids given most recent first.
	// Duplicates and ids beyond capacity are ignored.
	Restore(ids []string)

	Size() int64
	Capacity() int
}

// mruList implements List with a map for lookups and a linked list for
// order. The front element is the most recent entry.
type mruList struct {
	mu       sync.Mutex
	index    map[string]*list.Element
	order    *list.List
	capacity int
	size     atomic.Int64
}

// New creates an empty List.
func New(opts ...Option) List {
	l := &mruList{capacity: defaultCapacity, order: list.New()}
	for _, opt := range opts {
		opt(l)
	}
	l.index = make(map[string]*list.Element, l.capacity)
	return l
}

func (l *mruList) Touch(_ context.Context, id string) bool {
	if id == "" {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.index[id]; ok {
		l.order.MoveToFront(e)
		return false
	}

	evicted := false
	if len(l.index) >= l.capacity {
		if back := l.order.Back(); back != nil {
			delete(l.index, l.order.Remove(back).(string))
			evicted = true
		}
	}
	l.index[id] = l.order.PushFront(id)
	l.size.Store(int64(len(l.index)))
	return evicted
}

func (l *mruList) Remove(_ context.Context, id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.index[id]
	if !ok {
		return false
	}
	l.order.Remove(e)
	delete(l.index, id)
	l.size.Store(int64(len(l.index)))
	return true
}

func (l *mruList) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, 0, len(l.index))
	for e := l.order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(string))
	}
	return out
}

func (l *mruList) Restore(ids []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.index = make(map[string]*list.Element, l.capacity)
	l.order.Init()
	for _, id := range ids {
		if id == "" || len(l.index) >= l.capacity {
			continue
		}
		if _, dup := l.index[id]; dup {
			continue
		}
		l.index[id] = l.order.PushBack(id)
	}
	l.size.Store(int64(len(l.index)))
}

func (l *mruList) Size() int64 {
	return l.size.Load()
}

func (l *mruList) Capacity() int {
	return l.capacity
}

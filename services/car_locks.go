package services

import (
	"sort"
	"sync"
)

// carLocks serializes booking writes per car inside this process. The
// database row lock taken in the same critical section covers other
// processes on drivers that support SELECT ... FOR UPDATE.
type carLocks struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newCarLocks() *carLocks {
	return &carLocks{locks: make(map[uint]*sync.Mutex)}
}

func (l *carLocks) get(carID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[carID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[carID] = m
	}
	return m
}

// Lock acquires the locks of every distinct car id in ascending order and
// returns the matching unlock.
func (l *carLocks) Lock(carIDs ...uint) func() {
	ids := make([]uint, 0, len(carIDs))
	seen := make(map[uint]struct{}, len(carIDs))
	for _, id := range carIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	held := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		m := l.get(id)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

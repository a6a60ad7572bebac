// internal/entity/pool.go
package entity

import (
	"errors"

	"aimon-defense/internal/types"
)

// ErrPoolFull is returned by Add when the pool has reached its capacity cap.
var ErrPoolFull = errors.New("entity pool is full")

type slot[T any] struct {
	id    types.EntityID
	alive bool
	value T
}

// Pool is a slot arena for one entity kind.
//
// Slots are recycled through a free list, but iteration follows the order
// list, which holds live slots in creation order. Remove only tombstones a
// slot; Compact drops tombstones from the order list without reordering and
// returns their slots to the free list. Removing during Each therefore never
// skips or repeats an entry.
type Pool[T any] struct {
	slots []slot[T]
	order []int32
	free  []int32
	index map[types.EntityID]int32
	live  int
	limit int // 0 = unbounded
	dirty bool
}

// NewPool creates a pool. limit caps the number of live entries; 0 disables the cap.
func NewPool[T any](limit int) *Pool[T] {
	return &Pool[T]{
		index: make(map[types.EntityID]int32),
		limit: limit,
	}
}

// Add stores v under id and appends it to the iteration order.
func (p *Pool[T]) Add(id types.EntityID, v T) error {
	if p.limit > 0 && p.live >= p.limit {
		return ErrPoolFull
	}

	var idx int32
	if n := len(p.free); n > 0 {
		idx = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.slots = append(p.slots, slot[T]{})
		idx = int32(len(p.slots) - 1)
	}

	p.slots[idx] = slot[T]{id: id, alive: true, value: v}
	p.index[id] = idx
	p.order = append(p.order, idx)
	p.live++
	return nil
}

// Get returns a pointer to the live value for id.
// The pointer is valid until the next Compact.
func (p *Pool[T]) Get(id types.EntityID) (*T, bool) {
	idx, ok := p.index[id]
	if !ok {
		return nil, false
	}
	return &p.slots[idx].value, true
}

// Remove tombstones the entry. It reports whether the entry was live.
func (p *Pool[T]) Remove(id types.EntityID) bool {
	idx, ok := p.index[id]
	if !ok {
		return false
	}
	delete(p.index, id)
	p.slots[idx].alive = false
	p.live--
	p.dirty = true
	return true
}

// Each calls fn for every live entry in creation order until fn returns false.
// Entries added during the walk are not visited.
func (p *Pool[T]) Each(fn func(id types.EntityID, v *T) bool) {
	n := len(p.order)
	for i := 0; i < n; i++ {
		s := &p.slots[p.order[i]]
		if !s.alive {
			continue
		}
		if !fn(s.id, &s.value) {
			return
		}
	}
}

// Compact removes tombstones from the iteration order, keeping the relative
// order of live entries, and recycles their slots.
func (p *Pool[T]) Compact() {
	if !p.dirty {
		return
	}
	kept := p.order[:0]
	for _, idx := range p.order {
		if p.slots[idx].alive {
			kept = append(kept, idx)
			continue
		}
		var zero T
		p.slots[idx].value = zero
		p.slots[idx].id = 0
		p.free = append(p.free, idx)
	}
	p.order = kept
	p.dirty = false
}

// Len returns the number of live entries.
func (p *Pool[T]) Len() int {
	return p.live
}

// Values returns a copy of the live values in creation order.
func (p *Pool[T]) Values() []T {
	out := make([]T, 0, p.live)
	p.Each(func(_ types.EntityID, v *T) bool {
		out = append(out, *v)
		return true
	})
	return out
}

// IDs returns the live ids in creation order.
func (p *Pool[T]) IDs() []types.EntityID {
	out := make([]types.EntityID, 0, p.live)
	p.Each(func(id types.EntityID, _ *T) bool {
		out = append(out, id)
		return true
	})
	return out
}

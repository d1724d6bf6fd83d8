// Package slab stores values behind generational handles.
//
// A Handle packs a slot index with the generation the slot had when the
// value was inserted. Removing a value bumps the slot's generation, so
// handles to removed values stop resolving even after the slot is
// reused:
//
//	var s slab.Slab[*File]
//	h := s.Insert(f)
//	f, ok := s.Get(h)    // ok
//	s.Remove(h)
//	_, ok = s.Get(h)     // !ok, also after the slot is reused
//
// The zero Handle never resolves. A Slab is not safe for concurrent use.
package slab

import "iter"

// Handle identifies one value in a Slab.
type Handle uint64

// Nil is the handle that never resolves.
const Nil Handle = 0

func makeHandle(index, gen uint32) Handle {
	return Handle(gen)<<32 | Handle(index+1)
}

// Index returns the slot index, or -1 for Nil.
func (h Handle) Index() int { return int(uint32(h)) - 1 }

// Generation returns the generation tag.
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

type entry[T any] struct {
	value T
	gen   uint32
	valid bool
}

// Slab is a free-list backed table of values. The zero value is empty
// and ready to use.
type Slab[T any] struct {
	entries []entry[T]
	free    []uint32
	live    int
}

// Insert stores v and returns its handle.
func (s *Slab[T]) Insert(v T) Handle {
	s.live++
	if n := len(s.free); n > 0 {
		idx := s.free[n-1]
		s.free = s.free[:n-1]
		e := &s.entries[idx]
		e.value = v
		e.valid = true
		return makeHandle(idx, e.gen)
	}
	s.entries = append(s.entries, entry[T]{value: v, gen: 1, valid: true})
	return makeHandle(uint32(len(s.entries)-1), 1)
}

func (s *Slab[T]) lookup(h Handle) *entry[T] {
	idx := h.Index()
	if idx < 0 || idx >= len(s.entries) {
		return nil
	}
	e := &s.entries[idx]
	if !e.valid || e.gen != h.Generation() {
		return nil
	}
	return e
}

// Get returns the value behind h.
func (s *Slab[T]) Get(h Handle) (T, bool) {
	if e := s.lookup(h); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether h resolves.
func (s *Slab[T]) Contains(h Handle) bool { return s.lookup(h) != nil }

// Remove takes the value behind h out of the slab. The handle and every
// copy of it stop resolving.
func (s *Slab[T]) Remove(h Handle) (T, bool) {
	var zero T
	e := s.lookup(h)
	if e == nil {
		return zero, false
	}
	v := e.value
	e.value = zero
	e.valid = false
	e.gen++
	if e.gen == 0 {
		e.gen = 1
	}
	s.free = append(s.free, uint32(h.Index()))
	s.live--
	return v, true
}

// Len returns the number of stored values.
func (s *Slab[T]) Len() int { return s.live }

// All yields every stored value in slot order.
func (s *Slab[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		for i := range s.entries {
			e := &s.entries[i]
			if e.valid && !yield(makeHandle(uint32(i), e.gen), e.value) {
				return
			}
		}
	}
}

package slab

import "testing"

func TestInsertGetRemove(t *testing.T) {
	var s Slab[string]
	h := s.Insert("a")
	if h == Nil {
		t.Fatal("Insert() returned Nil")
	}
	if v, ok := s.Get(h); !ok || v != "a" {
		t.Fatalf("Get() = %q, %v, want a, true", v, ok)
	}
	if v, ok := s.Remove(h); !ok || v != "a" {
		t.Fatalf("Remove() = %q, %v, want a, true", v, ok)
	}
	if _, ok := s.Get(h); ok {
		t.Error("Get() resolved a removed handle")
	}
	if _, ok := s.Remove(h); ok {
		t.Error("Remove() succeeded twice")
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestReusedSlotRejectsStaleHandle(t *testing.T) {
	var s Slab[int]
	old := s.Insert(1)
	s.Remove(old)
	fresh := s.Insert(2)

	if fresh.Index() != old.Index() {
		t.Fatalf("slot %d not reused, got %d", old.Index(), fresh.Index())
	}
	if fresh.Generation() == old.Generation() {
		t.Fatalf("generation not bumped: %d", fresh.Generation())
	}
	if _, ok := s.Get(old); ok {
		t.Error("stale handle resolved after slot reuse")
	}
	if v, ok := s.Get(fresh); !ok || v != 2 {
		t.Errorf("Get(fresh) = %d, %v, want 2, true", v, ok)
	}
}

func TestInvalidHandles(t *testing.T) {
	var s Slab[int]
	s.Insert(1)

	tests := []struct {
		name string
		h    Handle
	}{
		{"nil", Nil},
		{"out of range", makeHandle(5, 1)},
		{"wrong generation", makeHandle(0, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if s.Contains(tt.h) {
				t.Errorf("Contains(%#x) = true", uint64(tt.h))
			}
			if _, ok := s.Remove(tt.h); ok {
				t.Errorf("Remove(%#x) succeeded", uint64(tt.h))
			}
		})
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestAll(t *testing.T) {
	var s Slab[string]
	a := s.Insert("a")
	b := s.Insert("b")
	c := s.Insert("c")
	s.Remove(b)

	var got []Handle
	for h, v := range s.All() {
		got = append(got, h)
		if w, _ := s.Get(h); w != v {
			t.Errorf("All() yielded %q for %#x, Get has %q", v, uint64(h), w)
		}
	}
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("All() handles = %v, want [%v %v]", got, a, c)
	}
}

func TestHandleLayout(t *testing.T) {
	h := makeHandle(3, 9)
	if h.Index() != 3 || h.Generation() != 9 {
		t.Errorf("makeHandle(3, 9) = index %d gen %d", h.Index(), h.Generation())
	}
	if Nil.Index() != -1 {
		t.Errorf("Nil.Index() = %d, want -1", Nil.Index())
	}
}

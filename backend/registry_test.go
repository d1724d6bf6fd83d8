package backend

import (
	"slices"
	"testing"

	"github.com/gogpu/animbridge"
)

// stubBackend satisfies animbridge.Backend; calling any method panics.
type stubBackend struct {
	animbridge.Backend
	name string
}

func stub(name string) Factory {
	return func() animbridge.Backend { return &stubBackend{name: name} }
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry(t *testing.T) {
	t.Helper()
	registryMu.Lock()
	saved := backends
	backends = make(map[string]Factory)
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		backends = saved
		registryMu.Unlock()
	})
}

func TestRegisterAndNew(t *testing.T) {
	resetRegistry(t)
	Register("test", stub("test"))

	b, err := New("test")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if s, ok := b.(*stubBackend); !ok || s.name != "test" {
		t.Errorf("New() = %#v, want stub named test", b)
	}
	if !IsRegistered("test") {
		t.Error("IsRegistered(test) = false")
	}
}

func TestNewUnknown(t *testing.T) {
	resetRegistry(t)
	if _, err := New("nope"); err == nil {
		t.Error("New(nope) error = nil, want error")
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry(t)
	Register("dup", stub("dup"))

	tests := []struct {
		name    string
		factory Factory
		key     string
	}{
		{"nil factory", nil, "x"},
		{"duplicate", stub("dup"), "dup"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() did not panic")
				}
			}()
			Register(tt.key, tt.factory)
		})
	}
}

func TestDefaultPriority(t *testing.T) {
	resetRegistry(t)
	if Default() != nil {
		t.Fatal("Default() with empty registry != nil")
	}

	Register("zzz", stub("zzz"))
	Register("aaa", stub("aaa"))
	if got := Default().(*stubBackend).name; got != "aaa" {
		t.Errorf("Default() = %q, want first sorted name", got)
	}

	Register(Record, stub(Record))
	if got := Default().(*stubBackend).name; got != Record {
		t.Errorf("Default() = %q, want %q", got, Record)
	}

	Register(Raster, stub(Raster))
	if got := Default().(*stubBackend).name; got != Raster {
		t.Errorf("Default() = %q, want %q", got, Raster)
	}
}

func TestNamesSortedAndUnregister(t *testing.T) {
	resetRegistry(t)
	Register("b", stub("b"))
	Register("a", stub("a"))

	if got := Names(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want [a b]", got)
	}
	Unregister("a")
	Unregister("missing")
	if got := Names(); !slices.Equal(got, []string{"b"}) {
		t.Errorf("Names() after Unregister = %v, want [b]", got)
	}
}

func TestMustPanicsOnUnknown(t *testing.T) {
	resetRegistry(t)
	defer func() {
		if recover() == nil {
			t.Error("Must(unknown) did not panic")
		}
	}()
	Must("unknown")
}

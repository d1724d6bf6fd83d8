package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/animbridge"
)

// Well-known backend names.
const (
	Raster = "raster"
	Record = "record"
)

// Factory creates a new backend instance.
type Factory func() animbridge.Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Default picks the first registered name in this order.
	priority = []string{Raster, Record}
)

// Register makes a backend available by name. It panics if factory is
// nil or the name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("backend: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("backend: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend. It is a no-op for unknown names.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// New creates a backend by name.
func New(name string) (animbridge.Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Must is like New but panics on error.
func Must(name string) animbridge.Backend {
	b, err := New(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Default creates the preferred registered backend, or returns nil when
// none is registered.
func Default() animbridge.Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := backends[name]; ok {
			return factory()
		}
	}
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)
	return backends[names[0]]()
}

// Names returns the registered backend names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

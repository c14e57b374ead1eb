package renderer

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/sunburst"
)

// ErrUnknownKind is returned by Open for a kind nobody registered.
var ErrUnknownKind = errors.New("renderer: unknown kind")

// Factory creates a renderer for a canvas of the given size.
// The target string is interpreted by the renderer kind.
type Factory func(target string, width, height int) (sunburst.Renderer, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers a factory under kind.
// This is typically called from init() functions in renderer packages.
// If a factory with the same kind is already registered, it is replaced.
func Register(kind string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[kind] = f
}

// Unregister removes a kind from the registry.
// This is useful for testing.
func Unregister(kind string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, kind)
}

// Available returns the registered kinds in lexical order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// IsRegistered reports whether kind has a factory.
func IsRegistered(kind string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[kind]
	return ok
}

// Open creates a renderer of the given kind.
func Open(kind, target string, width, height int) (sunburst.Renderer, error) {
	registryMu.RLock()
	f, ok := factories[kind]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownKind, kind, Available())
	}

	r, err := f(target, width, height)
	if err != nil {
		return nil, fmt.Errorf("renderer: open %s: %w", kind, err)
	}
	sunburst.Logger().Debug("renderer opened", "kind", kind, "target", target)
	return r, nil
}

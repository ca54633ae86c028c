// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"slices"
	"sync"
)

// Registry of engines by name (e.g., "go", "native").
type Registry struct {
	engines map[string]Engine
	order   []string
	def     string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]Engine),
		mtx:     &sync.Mutex{},
	}
}

// Register adds e under e.Name(), replacing any engine of the same name.
func (r *Registry) Register(e Engine) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	name := e.Name()
	if _, ok := r.engines[name]; ok {
		r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
	}
	r.engines[name] = e
	r.order = append(r.order, name)
}

func (r *Registry) Get(name string) (Engine, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e, ok := r.engines[name]
	return e, ok
}

// SetDefault selects the engine returned by Default.
func (r *Registry) SetDefault(name string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.engines[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNoEngine, name)
	}
	r.def = name
	return nil
}

// Default returns the engine chosen with SetDefault, or the first one
// registered that is not a placeholder (see Availability).
func (r *Registry) Default() (Engine, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if e, ok := r.engines[r.def]; ok {
		return e, nil
	}
	if len(r.order) == 0 {
		return nil, ErrNoEngine
	}
	for _, name := range r.order {
		e := r.engines[name]
		if a, ok := e.(Availability); !ok || a.Available() {
			return e, nil
		}
	}
	return r.engines[r.order[0]], nil
}

// Lookup returns the engine called name, or the default when name is empty.
func (r *Registry) Lookup(name string) (Engine, error) {
	if name == "" {
		return r.Default()
	}
	e, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoEngine, name)
	}
	return e, nil
}

// Names lists registered engines in registration order.
func (r *Registry) Names() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return slices.Clone(r.order)
}

var engines = NewRegistry()

// Register adds e to the process-wide registry. Engine packages call it from
// init.
func Register(e Engine) { engines.Register(e) }

// LookupEngine resolves name in the process-wide registry.
func LookupEngine(name string) (Engine, error) { return engines.Lookup(name) }

// DefaultEngine returns the process-wide default engine.
func DefaultEngine() (Engine, error) { return engines.Default() }

// SetDefaultEngine selects the process-wide default engine by name.
func SetDefaultEngine(name string) error { return engines.SetDefault(name) }

// Engines lists the process-wide engine names.
func Engines() []string { return engines.Names() }

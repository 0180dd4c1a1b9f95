package frob

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Registry resolves variants by name at run time.
//
// Expected usage:
//
//	f, ok, err := reg.Resolve("foo")
type Registry interface {
	Resolve(name string) (f Frobber, ok bool, err error)
}

// ErrRegistryPanic is returned if a constructor panics inside Resolve.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// Constructor builds a fresh variant value.
type Constructor func() Frobber

// MapRegistry is a simple in-memory registry of constructors.
type MapRegistry struct {
	items map[string]Constructor
}

// NewMapRegistry returns an empty registry.
func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]Constructor{}}
}

// DefaultRegistry returns a registry holding the built-in variants under
// "foo" and "bar".
func DefaultRegistry() *MapRegistry {
	return NewMapRegistry().
		Provide("foo", func() Frobber { return &Foo{} }).
		Provide("bar", func() Frobber { return &Bar{} })
}

// Provide stores a constructor under name and returns the registry for chaining.
func (r *MapRegistry) Provide(name string, ctor Constructor) *MapRegistry {
	r.items[name] = ctor
	return r
}

// Resolve implements Registry. A missing name yields (nil, false, nil).
// Constructor panics and nil constructors are converted into errors.
func (r *MapRegistry) Resolve(name string) (f Frobber, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			f = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	ctor, ok := r.items[name]
	if !ok {
		return nil, false, nil
	}
	return ctor(), true, nil
}

// Get returns the constructor if present (no panic).
func (r *MapRegistry) Get(name string) (Constructor, bool) {
	ctor, ok := r.items[name]
	return ctor, ok
}

// MustGet returns a new value from the named constructor or panics with a
// helpful message.
func (r *MapRegistry) MustGet(name string) Frobber {
	ctor, ok := r.items[name]
	if !ok {
		panic(fmt.Errorf("frob: registry missing variant %q", name))
	}
	return ctor()
}

// Names returns the registered names in sorted order.
func (r *MapRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.items))
}

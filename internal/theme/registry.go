// Package theme maintains named widget themes parsed from stylesheet source
// and tracks which one is active. A Registry is an explicitly owned instance;
// callers construct one and hand it to the surfaces that need it instead of
// sharing package state.
package theme

import (
	"strings"
	"sync"

	"themed/internal/errors"
	"themed/internal/qss"
)

// DefaultTheme is the theme name a fresh registry starts on.
const DefaultTheme = "dark"

// Change describes a completed theme switch.
type Change struct {
	Previous string
	Current  string
}

// ObserverFunc receives theme switch notifications.
type ObserverFunc func(Change)

// Registry holds named themes and the active selection. A single mutex
// guards both; registrations and switches take the write lock, lookups the
// read lock. Observer callbacks run synchronously on the switching goroutine
// after the lock is released.
type Registry struct {
	mu        sync.RWMutex
	themes    map[string]*qss.Stylesheet
	order     []string
	active    string
	observers map[string]ObserverFunc
	obsOrder  []string
}

// New returns an empty registry. The active name starts as DefaultTheme;
// until a theme by that name is registered, lookups resolve to an empty set.
func New() *Registry {
	return &Registry{
		themes:    make(map[string]*qss.Stylesheet),
		active:    DefaultTheme,
		observers: make(map[string]ObserverFunc),
	}
}

// NewWithBuiltins returns a registry preloaded with the bundled themes.
func NewWithBuiltins() (*Registry, error) {
	r := New()
	if err := RegisterBuiltins(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Register parses source and stores it under name, replacing any previous
// theme of that name. When parsing fails nothing is stored: an existing
// theme under the same name stays as it was.
func (r *Registry) Register(name, source string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewThemeError("theme name is required", "", errors.ThemeInvalid, nil)
	}

	sheet, err := qss.Parse(source, name)
	if err != nil {
		return errors.NewThemeError("cannot register theme", name, errors.ThemeInvalid, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.themes[name]; !exists {
		r.order = append(r.order, name)
	}
	r.themes[name] = sheet
	return nil
}

// Remove drops the theme registered under name. The active theme cannot be
// removed; switch away first. Unknown names return a ThemeNotFound error.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.themes[name]; !ok {
		return errors.NewThemeError("unknown theme", name, errors.ThemeNotFound, nil)
	}
	if name == r.active {
		return errors.NewThemeError("cannot remove the active theme", name, errors.ThemeInvalid, nil)
	}
	delete(r.themes, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetActive switches the active theme and notifies observers. An unknown
// name returns a ThemeNotFound error and leaves the previous selection in
// place. Re-activating the current theme still notifies, so hosts reapply
// their styling.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	if _, ok := r.themes[name]; !ok {
		r.mu.Unlock()
		return errors.NewThemeError("unknown theme", name, errors.ThemeNotFound, nil)
	}
	prev := r.active
	r.active = name

	observers := make([]ObserverFunc, 0, len(r.obsOrder))
	for _, id := range r.obsOrder {
		observers = append(observers, r.observers[id])
	}
	r.mu.Unlock()

	change := Change{Previous: prev, Current: name}
	for _, fn := range observers {
		fn(change)
	}
	return nil
}

// Active returns the active theme name.
func (r *Registry) Active() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Names returns the registered theme names in registration order.
// Re-registering a name keeps its original position.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Has reports whether a theme is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.themes[name]
	return ok
}

// Get returns the stylesheet registered under name.
func (r *Registry) Get(name string) (*qss.Stylesheet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sheet, ok := r.themes[name]
	if !ok {
		return nil, errors.NewThemeError("unknown theme", name, errors.ThemeNotFound, nil)
	}
	return sheet, nil
}

// Resolve merges the active theme's matching rules for the query in rule
// order. With no active theme or no matching rules the result is an empty,
// non-nil set; resolution never fails.
func (r *Registry) Resolve(q qss.Query) qss.PropertySet {
	r.mu.RLock()
	sheet := r.themes[r.active]
	r.mu.RUnlock()

	if sheet == nil {
		return qss.PropertySet{}
	}
	return sheet.Resolve(q)
}

// ResolveClass resolves a widget class with optional states against the
// active theme.
func (r *Registry) ResolveClass(class string, states ...string) qss.PropertySet {
	return r.Resolve(qss.Query{Class: class, States: states})
}

// ResolveIn resolves a query against a specific theme rather than the
// active one.
func (r *Registry) ResolveIn(name string, q qss.Query) (qss.PropertySet, error) {
	sheet, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return sheet.Resolve(q), nil
}

// SubscribeFunc registers an observer under id. Observers are notified in
// subscription order on every successful SetActive.
func (r *Registry) SubscribeFunc(id string, fn ObserverFunc) error {
	if id == "" {
		return errors.New("observer id is required")
	}
	if fn == nil {
		return errors.New("observer func is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.observers[id]; exists {
		return errors.Newf("observer %q already subscribed", id)
	}
	r.observers[id] = fn
	r.obsOrder = append(r.obsOrder, id)
	return nil
}

// Unsubscribe removes the observer registered under id.
func (r *Registry) Unsubscribe(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.observers[id]; !exists {
		return errors.Newf("observer %q not subscribed", id)
	}
	delete(r.observers, id)
	for i, oid := range r.obsOrder {
		if oid == id {
			r.obsOrder = append(r.obsOrder[:i], r.obsOrder[i+1:]...)
			break
		}
	}
	return nil
}

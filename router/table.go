package router

import (
	"sync"
	"sync/atomic"
)

// Table is the append-only route registry. It is filled by a single
// Builder during initialization, then published; after Publish the
// table is read-only and safe for unlimited concurrent readers.
type Table struct {
	mu        sync.Mutex
	published atomic.Bool
	routes    []*Route
	bindings  []*ErrorBinding
}

// NewTable creates an empty, unpublished route table.
func NewTable() *Table {
	return &Table{}
}

func (t *Table) add(r *Route) error {
	if t.published.Load() {
		return ErrTablePublished
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.routes = append(t.routes, r)
	return nil
}

func (t *Table) addBinding(b *ErrorBinding) error {
	if t.published.Load() {
		return ErrTablePublished
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.bindings = append(t.bindings, b)
	return nil
}

// Publish freezes the table. Inserts after Publish fail with
// ErrTablePublished.
func (t *Table) Publish() {
	t.published.Store(true)
}

// Published reports whether the table has been frozen.
func (t *Table) Published() bool {
	return t.published.Load()
}

// Routes returns every route in insertion order.
func (t *Table) Routes() []*Route {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// ErrorBindings returns every error binding in insertion order.
func (t *Table) ErrorBindings() []*ErrorBinding {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*ErrorBinding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// FindRoutes returns every route registered for the verb whose URI
// template equals the given template. Placeholder matching against
// concrete request paths belongs to the URI template engine, not here.
func (t *Table) FindRoutes(verb Verb, uri string) []*Route {
	var out []*Route
	for _, r := range t.Routes() {
		if r.verb == verb && r.uri == uri {
			out = append(out, r)
		}
	}
	return out
}

// FindErrorBinding returns the handler binding for an exception type
// raised by the given originating type. Local bindings win over global
// ones, and exact exception matches win over universal ones within each
// scope. Returns nil when nothing matches.
func (t *Table) FindErrorBinding(originatingType, exceptionType string) *ErrorBinding {
	bindings := t.ErrorBindings()
	var localUniversal, globalExact, globalUniversal *ErrorBinding
	for _, b := range bindings {
		if !b.Matches(originatingType, exceptionType) {
			continue
		}
		exact := b.Exception == exceptionType && exceptionType != UniversalThrowable
		switch {
		case !b.Global && exact:
			return b
		case !b.Global && localUniversal == nil:
			localUniversal = b
		case b.Global && exact && globalExact == nil:
			globalExact = b
		case b.Global && globalUniversal == nil:
			globalUniversal = b
		}
	}
	if localUniversal != nil {
		return localUniversal
	}
	if globalExact != nil {
		return globalExact
	}
	return globalUniversal
}

// FindStatusBinding returns the handler binding for a status code
// raised by the given originating type, preferring local bindings.
// Returns nil when nothing matches.
func (t *Table) FindStatusBinding(originatingType string, status int) *ErrorBinding {
	var global *ErrorBinding
	for _, b := range t.ErrorBindings() {
		if !b.MatchesStatus(originatingType, status) {
			continue
		}
		if !b.Global {
			return b
		}
		if global == nil {
			global = b
		}
	}
	return global
}

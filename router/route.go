package router

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Target identifies the method a route dispatches to.
type Target struct {
	Type       string
	Method     string
	ParamTypes []string
}

func (t Target) String() string {
	return t.Type + "#" + t.Method + "(" + strings.Join(t.ParamTypes, ", ") + ")"
}

// Route is a resolved binding of verb, URI template and target method.
// Verb, URI and target are fixed at construction; consumed and produced
// media types are configured exactly once, immediately afterwards.
type Route struct {
	id       uuid.UUID
	verb     Verb
	uri      string
	target   Target
	consumes []MediaType
	produces []MediaType

	consumesSet bool
	producesSet bool
}

func newRoute(verb Verb, uri string, target Target) *Route {
	return &Route{
		id:     uuid.New(),
		verb:   verb,
		uri:    uri,
		target: target,
	}
}

// ID returns the route's unique identity, used for diagnostics.
func (r *Route) ID() uuid.UUID { return r.id }

// Verb returns the HTTP verb the route answers.
func (r *Route) Verb() Verb { return r.verb }

// URI returns the resolved absolute URI template.
func (r *Route) URI() string { return r.uri }

// Target returns the method the route dispatches to.
func (r *Route) Target() Target { return r.target }

// Consumes configures the consumed media types. It may be called at
// most once per route.
func (r *Route) Consumes(types ...MediaType) *Route {
	if r.consumesSet {
		panic(fmt.Sprintf("consumed media types already configured for %s", r))
	}
	r.consumes = types
	r.consumesSet = true
	return r
}

// Produces configures the produced media types. It may be called at
// most once per route.
func (r *Route) Produces(types ...MediaType) *Route {
	if r.producesSet {
		panic(fmt.Sprintf("produced media types already configured for %s", r))
	}
	r.produces = types
	r.producesSet = true
	return r
}

// ConsumedTypes returns the configured consumed media types, nil for
// routes that take no body.
func (r *Route) ConsumedTypes() []MediaType { return r.consumes }

// ProducedTypes returns the configured produced media types.
func (r *Route) ProducedTypes() []MediaType { return r.produces }

func (r *Route) String() string {
	return fmt.Sprintf("%s %s -> %s", r.verb, r.uri, r.target)
}

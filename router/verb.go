// Package router builds route tables from declarative method metadata.
// Controllers are described to the builder as beans, executable method
// references and annotation attribute bags; the builder resolves URIs,
// media types and error-handler bindings and appends concrete routes to
// a shared Table.
package router

// Verb identifies the HTTP semantics of a route annotation. ERROR is a
// pseudo-verb used for error-handler bindings.
type Verb string

const (
	GET     Verb = "GET"
	POST    Verb = "POST"
	PUT     Verb = "PUT"
	PATCH   Verb = "PATCH"
	DELETE  Verb = "DELETE"
	HEAD    Verb = "HEAD"
	OPTIONS Verb = "OPTIONS"
	TRACE   Verb = "TRACE"
	ERROR   Verb = "ERROR"
)

// Verbs lists every verb the builder dispatches on, in dispatch order.
var Verbs = []Verb{GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS, TRACE, ERROR}

// PermitsBody reports whether requests for this verb may carry a body,
// which decides whether consumed media types are resolved for a route.
func (v Verb) PermitsBody() bool {
	switch v {
	case POST, PUT, PATCH, DELETE, OPTIONS:
		return true
	default:
		return false
	}
}

// Valid reports whether v is one of the known verb tags.
func (v Verb) Valid() bool {
	switch v {
	case GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS, TRACE, ERROR:
		return true
	default:
		return false
	}
}

func (v Verb) String() string {
	return string(v)
}

package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteString(t *testing.T) {
	route := newRoute(GET, "/book/{id}", Target{
		Type:       "BookController",
		Method:     "show",
		ParamTypes: []string{"string"},
	})
	assert.Equal(t, "GET /book/{id} -> BookController#show(string)", route.String())
}

func TestRouteMediaTypesSetOnce(t *testing.T) {
	route := newRoute(POST, "/book", Target{Type: "BookController", Method: "create"})
	route.Consumes(ApplicationXML).Produces(ApplicationJSON)

	assert.Panics(t, func() { route.Consumes(ApplicationJSON) })
	assert.Panics(t, func() { route.Produces(ApplicationXML) })

	assert.Equal(t, []MediaType{ApplicationXML}, route.ConsumedTypes())
	assert.Equal(t, []MediaType{ApplicationJSON}, route.ProducedTypes())
}

func TestVerbPermitsBody(t *testing.T) {
	assert.True(t, POST.PermitsBody())
	assert.True(t, PUT.PermitsBody())
	assert.True(t, PATCH.PermitsBody())
	assert.True(t, DELETE.PermitsBody())
	assert.True(t, OPTIONS.PermitsBody())

	assert.False(t, GET.PermitsBody())
	assert.False(t, HEAD.PermitsBody())
	assert.False(t, TRACE.PermitsBody())
	assert.False(t, ERROR.PermitsBody())
}

package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRejectsInsertAfterPublish(t *testing.T) {
	b := newTestBuilder(t)
	meta := Metadata{Routes: []Annotation{{Verb: GET, URI: "/", HeadRoute: boolPtr(false)}}}

	require.NoError(t, b.ProcessMethod(
		BeanRef{TypeName: "BookController"},
		MethodRef{Name: "list", DeclaringType: "BookController"},
		meta,
	))

	b.Table().Publish()
	assert.True(t, b.Table().Published())

	err := b.ProcessMethod(
		BeanRef{TypeName: "CatController"},
		MethodRef{Name: "list", DeclaringType: "CatController"},
		meta,
	)
	assert.ErrorIs(t, err, ErrTablePublished)
	assert.Len(t, b.Table().Routes(), 1)
}

func TestFindRoutesByVerbAndTemplate(t *testing.T) {
	b := newTestBuilder(t)
	bean := BeanRef{TypeName: "BookController"}
	method := MethodRef{Name: "show", DeclaringType: "BookController"}
	meta := Metadata{Routes: []Annotation{{Verb: GET, URI: "/{id}"}}}

	require.NoError(t, b.ProcessMethod(bean, method, meta))

	matches := b.Table().FindRoutes(GET, "/book/{id}")
	require.Len(t, matches, 1)
	assert.Equal(t, GET, matches[0].Verb())

	assert.Len(t, b.Table().FindRoutes(HEAD, "/book/{id}"), 1)
	assert.Empty(t, b.Table().FindRoutes(POST, "/book/{id}"))
	assert.Empty(t, b.Table().FindRoutes(GET, "/book"))
}

func TestFindErrorBindingPrecedence(t *testing.T) {
	table := NewTable()
	target := Target{Type: "H", Method: "handle"}

	globalUniversal := &ErrorBinding{Kind: ExceptionBinding, Global: true, Exception: UniversalThrowable, Target: target}
	globalExact := &ErrorBinding{Kind: ExceptionBinding, Global: true, Exception: "IOException", Target: target}
	localUniversal := &ErrorBinding{Kind: ExceptionBinding, OriginatingType: "BookController", Exception: UniversalThrowable, Target: target}
	localExact := &ErrorBinding{Kind: ExceptionBinding, OriginatingType: "BookController", Exception: "IOException", Target: target}

	require.NoError(t, table.addBinding(globalUniversal))
	require.NoError(t, table.addBinding(globalExact))
	require.NoError(t, table.addBinding(localUniversal))
	require.NoError(t, table.addBinding(localExact))
	table.Publish()

	t.Run("local exact wins", func(t *testing.T) {
		assert.Same(t, localExact, table.FindErrorBinding("BookController", "IOException"))
	})

	t.Run("local universal beats global exact", func(t *testing.T) {
		assert.Same(t, localUniversal, table.FindErrorBinding("BookController", "SQLException"))
	})

	t.Run("global exact for foreign type", func(t *testing.T) {
		assert.Same(t, globalExact, table.FindErrorBinding("CatController", "IOException"))
	})

	t.Run("global universal as last resort", func(t *testing.T) {
		assert.Same(t, globalUniversal, table.FindErrorBinding("CatController", "SQLException"))
	})

	t.Run("nil when no exception bindings apply", func(t *testing.T) {
		empty := NewTable()
		empty.Publish()
		assert.Nil(t, empty.FindErrorBinding("BookController", "IOException"))
	})
}

func TestFindStatusBindingPrefersLocal(t *testing.T) {
	table := NewTable()
	target := Target{Type: "H", Method: "handle"}

	global := &ErrorBinding{Kind: StatusBinding, Global: true, Status: http.StatusNotFound, Target: target}
	local := &ErrorBinding{Kind: StatusBinding, OriginatingType: "BookController", Status: http.StatusNotFound, Target: target}

	require.NoError(t, table.addBinding(global))
	require.NoError(t, table.addBinding(local))
	table.Publish()

	assert.Same(t, local, table.FindStatusBinding("BookController", http.StatusNotFound))
	assert.Same(t, global, table.FindStatusBinding("CatController", http.StatusNotFound))
	assert.Nil(t, table.FindStatusBinding("BookController", http.StatusConflict))
}

func TestRoutesReturnsCopy(t *testing.T) {
	b := newTestBuilder(t)
	meta := Metadata{Routes: []Annotation{{Verb: GET, URI: "/", HeadRoute: boolPtr(false)}}}
	require.NoError(t, b.ProcessMethod(
		BeanRef{TypeName: "BookController"},
		MethodRef{Name: "list", DeclaringType: "BookController"},
		meta,
	))

	routes := b.Table().Routes()
	routes[0] = nil
	assert.NotNil(t, b.Table().Routes()[0])
}

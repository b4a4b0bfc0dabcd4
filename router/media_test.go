package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMediaType(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		mt, err := ParseMediaType("application/json")
		require.NoError(t, err)
		assert.Equal(t, "application/json", mt.Name)
		assert.Equal(t, "application", mt.Type)
		assert.Equal(t, "json", mt.Subtype)
		assert.Nil(t, mt.Params)
	})

	t.Run("parameters", func(t *testing.T) {
		mt, err := ParseMediaType("text/plain; charset=utf-8")
		require.NoError(t, err)
		assert.Equal(t, "text/plain", mt.Name)
		assert.Equal(t, "utf-8", mt.Params["charset"])
	})

	t.Run("normalizes case", func(t *testing.T) {
		mt, err := ParseMediaType("Application/JSON")
		require.NoError(t, err)
		assert.Equal(t, "application/json", mt.Name)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseMediaType("not a media type")
		assert.Error(t, err)
	})
}

func TestResolveMediaTypes(t *testing.T) {
	method := MethodRef{Name: "save", DeclaringType: "BookController"}

	t.Run("annotation values win", func(t *testing.T) {
		types, err := resolveMediaTypes(method, []string{"application/xml"}, []string{"text/html"})
		require.NoError(t, err)
		require.Len(t, types, 1)
		assert.Equal(t, "application/xml", types[0].Name)
	})

	t.Run("falls through to method level", func(t *testing.T) {
		types, err := resolveMediaTypes(method, nil, []string{"text/html"})
		require.NoError(t, err)
		require.Len(t, types, 1)
		assert.Equal(t, "text/html", types[0].Name)
	})

	t.Run("defaults to application json", func(t *testing.T) {
		types, err := resolveMediaTypes(method, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, []MediaType{ApplicationJSON}, types)
	})

	t.Run("multiple values preserved in order", func(t *testing.T) {
		types, err := resolveMediaTypes(method, []string{"application/json", "application/xml"}, nil)
		require.NoError(t, err)
		require.Len(t, types, 2)
		assert.Equal(t, "application/json", types[0].Name)
		assert.Equal(t, "application/xml", types[1].Name)
	})

	t.Run("malformed value identifies method and string", func(t *testing.T) {
		_, err := resolveMediaTypes(method, []string{"bogus"}, nil)
		var malformed *MalformedMediaTypeError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, "BookController#save", malformed.Method)
		assert.Equal(t, "bogus", malformed.Value)
		assert.Contains(t, err.Error(), "bogus")
	})
}

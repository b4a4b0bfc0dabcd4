package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNestURI(t *testing.T) {
	tests := []struct {
		name  string
		root  string
		child string
		want  string
	}{
		{"root and segment", "/books", "authors", "/books/authors"},
		{"slash root", "/", "books", "/books"},
		{"slash child collapses", "/books", "/", "/books"},
		{"both slashed", "/books/", "/authors", "/books/authors"},
		{"empty child keeps root", "/books", "", "/books"},
		{"empty root and child", "", "", "/"},
		{"placeholder preserved", "/books", "{id}", "/books/{id}"},
		{"nested placeholder path", "/shops/{shopId}", "/books/{id}", "/shops/{shopId}/books/{id}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nestURI(tt.root, tt.child))
		})
	}
}

type staticNaming struct {
	base string
}

func (s staticNaming) BaseURI(BeanRef) string { return s.base }

func (s staticNaming) MethodURI(name string) string { return camelToKebab(name) }

func TestResolveURI(t *testing.T) {
	bean := BeanRef{TypeName: "BookController"}
	method := MethodRef{Name: "listAll", DeclaringType: "BookController"}

	t.Run("explicit uri nests onto base", func(t *testing.T) {
		got := resolveURI(bean, "/{id}", method, staticNaming{base: "/books"})
		assert.Equal(t, "/books/{id}", got)
	})

	t.Run("slash uri resolves to base", func(t *testing.T) {
		got := resolveURI(bean, "/", method, staticNaming{base: "/books"})
		assert.Equal(t, "/books", got)
	})

	t.Run("empty uri falls back to method fragment", func(t *testing.T) {
		got := resolveURI(bean, "", method, staticNaming{base: "/books"})
		assert.Equal(t, "/books/list-all", got)
	})
}

// Package echoadapter hands a published route table to an echo server,
// which owns URI-template matching and dispatch from there on.
package echoadapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/yshengliao/routemap/router"
)

// ErrUnpublishedTable is returned when a table is mounted before its
// build phase completed.
var ErrUnpublishedTable = errors.New("route table must be published before mounting")

// HandlerResolver maps a route target to the echo handler serving it.
type HandlerResolver func(route *router.Route) echo.HandlerFunc

// Mount registers every route of a published table on e. Error bindings
// are not mounted; they are looked up by the dispatcher at error time
// through the table's accessors.
func Mount(e *echo.Echo, table *router.Table, resolve HandlerResolver) error {
	if !table.Published() {
		return ErrUnpublishedTable
	}
	for _, route := range table.Routes() {
		h := resolve(route)
		if h == nil {
			return fmt.Errorf("no handler for route %s", route)
		}
		e.Add(route.Verb().String(), EchoPath(route.URI()), h)
	}
	return nil
}

// EchoPath converts {param} template placeholders into echo's :param
// syntax. Text outside placeholders passes through verbatim.
func EchoPath(uri string) string {
	if !strings.ContainsRune(uri, '{') {
		return uri
	}
	var sb strings.Builder
	sb.Grow(len(uri))
	for i := 0; i < len(uri); {
		open := strings.IndexByte(uri[i:], '{')
		if open < 0 {
			sb.WriteString(uri[i:])
			break
		}
		open += i
		end := strings.IndexByte(uri[open:], '}')
		if end < 0 {
			sb.WriteString(uri[i:])
			break
		}
		end += open
		sb.WriteString(uri[i:open])
		sb.WriteByte(':')
		sb.WriteString(uri[open+1 : end])
		i = end + 1
	}
	return sb.String()
}

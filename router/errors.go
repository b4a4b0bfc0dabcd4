package router

import (
	"errors"
	"fmt"
)

// ErrTablePublished is returned when routes or bindings are added to a
// table after Publish.
var ErrTablePublished = errors.New("route table already published")

// MalformedMediaTypeError reports an unparsable media-type string on a
// route annotation or method-level fallback.
type MalformedMediaTypeError struct {
	Method string
	Value  string
	Err    error
}

func (e *MalformedMediaTypeError) Error() string {
	return fmt.Sprintf("malformed media type %q on %s: %v", e.Value, e.Method, e.Err)
}

func (e *MalformedMediaTypeError) Unwrap() error {
	return e.Err
}

// UnsupportedAnnotationCombinationError reports an annotation carrying
// attributes that cannot be honored together, such as an error handler
// declaring both a status code and an exception type in strict mode.
type UnsupportedAnnotationCombinationError struct {
	Method string
	Detail string
}

func (e *UnsupportedAnnotationCombinationError) Error() string {
	return fmt.Sprintf("unsupported annotation combination on %s: %s", e.Method, e.Detail)
}

// AmbiguousErrorBindingError reports an error-handler annotation that,
// in strict mode, can neither supply nor infer an exception type.
type AmbiguousErrorBindingError struct {
	Method string
}

func (e *AmbiguousErrorBindingError) Error() string {
	return fmt.Sprintf("error handler %s declares no exception type and none of its parameters is throwable", e.Method)
}

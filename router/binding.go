package router

import "net/http"

// BindingKind discriminates the two ways an error handler binds.
type BindingKind int

const (
	// StatusBinding binds a handler to an HTTP status code.
	StatusBinding BindingKind = iota
	// ExceptionBinding binds a handler to an exception type.
	ExceptionBinding
)

func (k BindingKind) String() string {
	if k == StatusBinding {
		return "status"
	}
	return "exception"
}

// UniversalThrowable matches any exception type. It is the fallback
// when an error handler neither declares nor implies a concrete type.
const UniversalThrowable = "error"

// ErrorBinding associates an exception type or HTTP status with a
// handling method, scoped globally or to one declaring type.
type ErrorBinding struct {
	Kind   BindingKind
	Global bool

	// OriginatingType scopes a local binding to errors raised by one
	// declaring type. Empty for global bindings.
	OriginatingType string

	Status    int    // set for StatusBinding
	Exception string // set for ExceptionBinding

	Target Target
}

// Matches reports whether the binding applies to an error of the given
// exception type raised by the given originating type.
func (b *ErrorBinding) Matches(originatingType, exceptionType string) bool {
	if b.Kind != ExceptionBinding {
		return false
	}
	if !b.Global && b.OriginatingType != originatingType {
		return false
	}
	return b.Exception == exceptionType || b.Exception == UniversalThrowable
}

// MatchesStatus reports whether the binding applies to the given status
// raised by the given originating type.
func (b *ErrorBinding) MatchesStatus(originatingType string, status int) bool {
	if b.Kind != StatusBinding {
		return false
	}
	if !b.Global && b.OriginatingType != originatingType {
		return false
	}
	return b.Status == status
}

// resolveErrorBinding turns one ERROR annotation instance into a
// binding. A parseable status attribute wins over any exception data;
// otherwise the exception type comes from the annotation's explicit
// value when it is throwable, from the first throwable parameter, or
// falls back to the universal throwable type.
func (b *Builder) resolveErrorBinding(bean BeanRef, method MethodRef, ann Annotation) (*ErrorBinding, error) {
	target := Target{Type: bean.TypeName, Method: method.Name, ParamTypes: method.ParamTypes()}
	qualified := bean.TypeName + "#" + method.Name

	if ann.Status != 0 && ann.Exception != "" && b.strict {
		return nil, &UnsupportedAnnotationCombinationError{
			Method: qualified,
			Detail: "error handler declares both a status code and an exception type",
		}
	}

	if ann.Status != 0 && http.StatusText(ann.Status) != "" {
		binding := &ErrorBinding{
			Kind:   StatusBinding,
			Global: ann.Global,
			Status: ann.Status,
			Target: target,
		}
		if !ann.Global {
			binding.OriginatingType = bean.TypeName
		}
		return binding, nil
	}

	exception := ""
	if ann.Exception != "" && ann.ExceptionThrowable {
		exception = ann.Exception
	}
	if exception == "" {
		for _, p := range method.Params {
			if p.Throwable {
				exception = p.Type
				break
			}
		}
	}
	if exception == "" {
		if b.strict {
			return nil, &AmbiguousErrorBindingError{Method: qualified}
		}
		exception = UniversalThrowable
	}

	binding := &ErrorBinding{
		Kind:      ExceptionBinding,
		Global:    ann.Global,
		Exception: exception,
		Target:    target,
	}
	if !ann.Global {
		binding.OriginatingType = bean.TypeName
	}
	return binding, nil
}

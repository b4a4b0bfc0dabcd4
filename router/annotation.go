package router

// BeanRef identifies the declaring bean of a controller method. It is
// supplied by the discovery layer; the builder only reads the type name.
type BeanRef struct {
	TypeName string
}

// Param describes one method parameter. Throwable is a capability tag
// precomputed by the discovery layer so the builder never has to perform
// type introspection of its own.
type Param struct {
	Type      string
	Throwable bool
}

// MethodRef is an opaque reference to an executable method. It is owned
// by the discovery layer and read-only to the builder.
type MethodRef struct {
	Name          string
	DeclaringType string
	Params        []Param
	ReturnType    string
}

// ParamTypes returns the parameter type names in declaration order.
func (m MethodRef) ParamTypes() []string {
	if len(m.Params) == 0 {
		return nil
	}
	types := make([]string, len(m.Params))
	for i, p := range m.Params {
		types[i] = p.Type
	}
	return types
}

// Annotation is a single route-annotation instance. Annotations are
// repeatable: each instance on a method yields independent routes.
type Annotation struct {
	Verb Verb

	// URI is the annotation's template value. Empty means the naming
	// strategy derives a fragment from the method name.
	URI string

	Consumes []string
	Produces []string

	// HeadRoute controls implicit HEAD generation for GET routes.
	// nil means the default, which is enabled.
	HeadRoute *bool

	// ERROR-only attributes.
	Exception          string // explicit exception type name, empty if unset
	ExceptionThrowable bool   // capability tag for Exception
	Status             int    // HTTP status binding, 0 if unset
	Global             bool
}

func (a Annotation) headRoute() bool {
	if a.HeadRoute == nil {
		return true
	}
	return *a.HeadRoute
}

// Metadata is the annotation attribute bag for one method, assembled by
// the discovery layer.
type Metadata struct {
	// Routes holds every verb-annotation instance in declaration order.
	Routes []Annotation

	// Mapping is a bare URI-mapping annotation. It is consulted only
	// when Routes is empty and synthesizes a GET route.
	Mapping *Annotation

	// Consumes and Produces are method-level fallback values, applied
	// when a route annotation carries none of its own.
	Consumes []string
	Produces []string
}

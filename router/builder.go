package router

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Converter coerces raw annotation or request values into target types.
// The builder itself never converts anything; the dependency is carried
// for collaborators that resolve argument values from routes.
type Converter interface {
	Convert(value any, targetType string) (any, error)
}

// constructFn builds the routes for one annotation instance.
type constructFn func(bean BeanRef, method MethodRef, meta Metadata, ann Annotation) error

// Builder turns annotated method metadata into routes on a shared
// Table. Construction logic is selected per verb through a dispatch
// table assembled once in NewBuilder.
type Builder struct {
	table    *Table
	naming   NamingStrategy
	conv     Converter
	logger   *zap.Logger
	strict   bool
	handlers map[Verb]constructFn
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithNamingStrategy replaces the default hyphenated naming strategy.
func WithNamingStrategy(s NamingStrategy) BuilderOption {
	return func(b *Builder) { b.naming = s }
}

// WithLogger sets the logger used to report created routes.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logger }
}

// WithConverter sets the conversion service available to collaborators.
func WithConverter(c Converter) BuilderOption {
	return func(b *Builder) { b.conv = c }
}

// WithStrictBindings makes the builder reject error handlers that
// declare both a status and an exception type, or that can neither
// supply nor infer an exception type. Without it, a status attribute
// wins and missing types fall back to the universal throwable.
func WithStrictBindings() BuilderOption {
	return func(b *Builder) { b.strict = true }
}

// NewBuilder creates a Builder writing into table.
func NewBuilder(table *Table, opts ...BuilderOption) *Builder {
	b := &Builder{
		table:  table,
		naming: HyphenatedNamingStrategy{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.handlers = map[Verb]constructFn{
		GET:     b.buildGET,
		POST:    b.buildWithBody(POST),
		PUT:     b.buildWithBody(PUT),
		PATCH:   b.buildWithBody(PATCH),
		DELETE:  b.buildWithBody(DELETE),
		OPTIONS: b.buildWithBody(OPTIONS),
		HEAD:    b.buildBodyless(HEAD),
		TRACE:   b.buildBodyless(TRACE),
		ERROR:   b.buildError,
	}
	return b
}

// Table returns the table the builder writes into.
func (b *Builder) Table() *Table { return b.table }

// Converter returns the conversion service, nil when unset.
func (b *Builder) Converter() Converter { return b.conv }

// ProcessMethod builds routes for every annotation instance on one
// method. Instances are processed in declaration order; a failure on
// one instance is recorded and the rest still run, so one misconfigured
// annotation cannot mask errors elsewhere. Routes inserted before a
// failure stay in the table.
func (b *Builder) ProcessMethod(bean BeanRef, method MethodRef, meta Metadata) error {
	var errs error
	for _, ann := range meta.Routes {
		construct, ok := b.handlers[ann.Verb]
		if !ok {
			continue
		}
		errs = multierr.Append(errs, construct(bean, method, meta, ann))
	}

	if len(meta.Routes) == 0 && meta.Mapping != nil {
		errs = multierr.Append(errs, b.buildImplicitGET(bean, method, meta, *meta.Mapping))
	}
	return errs
}

func (b *Builder) target(bean BeanRef, method MethodRef) Target {
	return Target{Type: bean.TypeName, Method: method.Name, ParamTypes: method.ParamTypes()}
}

func (b *Builder) resolveProduces(method MethodRef, meta Metadata, ann Annotation) ([]MediaType, error) {
	return resolveMediaTypes(method, ann.Produces, meta.Produces)
}

func (b *Builder) resolveConsumes(method MethodRef, meta Metadata, ann Annotation) ([]MediaType, error) {
	return resolveMediaTypes(method, ann.Consumes, meta.Consumes)
}

func (b *Builder) insert(route *Route) error {
	if err := b.table.add(route); err != nil {
		return err
	}
	b.logger.Debug("created route",
		zap.String("verb", route.verb.String()),
		zap.String("uri", route.uri),
		zap.String("target", route.target.String()))
	return nil
}

// buildGET constructs the GET route and, unless the annotation opts
// out, an implicit HEAD route at the same URI with the same produced
// types.
func (b *Builder) buildGET(bean BeanRef, method MethodRef, meta Metadata, ann Annotation) error {
	uri := resolveURI(bean, ann.URI, method, b.naming)
	produces, err := b.resolveProduces(method, meta, ann)
	if err != nil {
		return err
	}
	route := newRoute(GET, uri, b.target(bean, method)).Produces(produces...)
	if err := b.insert(route); err != nil {
		return err
	}
	if ann.headRoute() {
		head := newRoute(HEAD, uri, b.target(bean, method)).Produces(produces...)
		if err := b.insert(head); err != nil {
			return err
		}
	}
	return nil
}

// buildWithBody constructs routes for verbs that accept a request
// body: both consumed and produced media types are resolved.
func (b *Builder) buildWithBody(verb Verb) constructFn {
	return func(bean BeanRef, method MethodRef, meta Metadata, ann Annotation) error {
		uri := resolveURI(bean, ann.URI, method, b.naming)
		consumes, err := b.resolveConsumes(method, meta, ann)
		if err != nil {
			return err
		}
		produces, err := b.resolveProduces(method, meta, ann)
		if err != nil {
			return err
		}
		route := newRoute(verb, uri, b.target(bean, method)).Consumes(consumes...).Produces(produces...)
		return b.insert(route)
	}
}

// buildBodyless constructs routes for HEAD and TRACE, which carry no
// media-type configuration at all.
func (b *Builder) buildBodyless(verb Verb) constructFn {
	return func(bean BeanRef, method MethodRef, meta Metadata, ann Annotation) error {
		uri := resolveURI(bean, ann.URI, method, b.naming)
		return b.insert(newRoute(verb, uri, b.target(bean, method)))
	}
}

// buildImplicitGET handles the bare URI-mapping fallback: it fires only
// when no verb annotation did, and synthesizes a GET route from the
// mapping's URI and produced types.
func (b *Builder) buildImplicitGET(bean BeanRef, method MethodRef, meta Metadata, ann Annotation) error {
	uri := resolveURI(bean, ann.URI, method, b.naming)
	produces, err := b.resolveProduces(method, meta, ann)
	if err != nil {
		return err
	}
	route := newRoute(GET, uri, b.target(bean, method)).Produces(produces...)
	return b.insert(route)
}

func (b *Builder) buildError(bean BeanRef, method MethodRef, _ Metadata, ann Annotation) error {
	binding, err := b.resolveErrorBinding(bean, method, ann)
	if err != nil {
		return err
	}
	if err := b.table.addBinding(binding); err != nil {
		return err
	}
	b.logger.Debug("created error binding",
		zap.String("kind", binding.Kind.String()),
		zap.Bool("global", binding.Global),
		zap.String("target", binding.Target.String()))
	return nil
}

// Package manifest reads controller descriptions from YAML and feeds
// them to the route builder. It stands in for a bean-discovery layer:
// each controller entry plays the bean, each method entry the
// executable method reference with its annotation attribute bag.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/yshengliao/routemap/router"
)

// File is the root of a route manifest.
type File struct {
	Controllers []Controller `yaml:"controllers"`
}

// Controller describes one bean and its annotated methods.
type Controller struct {
	Name    string   `yaml:"name"`
	Methods []Method `yaml:"methods"`
}

// Method describes one executable method with its routing metadata.
type Method struct {
	Name     string   `yaml:"name"`
	Params   []Param  `yaml:"params"`
	Returns  string   `yaml:"returns"`
	Consumes []string `yaml:"consumes"`
	Produces []string `yaml:"produces"`

	Routes  []Route `yaml:"routes"`
	Mapping *Route  `yaml:"mapping"`
}

// Param describes one method parameter.
type Param struct {
	Type      string `yaml:"type"`
	Throwable bool   `yaml:"throwable"`
}

// Route is one route-annotation instance. An omitted uri means the
// annotation default "/" (route at the controller base); an explicitly
// empty uri requests the naming-strategy fragment for the method name.
type Route struct {
	Verb      string   `yaml:"verb"`
	URI       *string  `yaml:"uri"`
	Consumes  []string `yaml:"consumes"`
	Produces  []string `yaml:"produces"`
	HeadRoute *bool    `yaml:"head_route"`

	Exception string `yaml:"exception"`
	Throwable bool   `yaml:"throwable"`
	Status    int    `yaml:"status"`
	Global    bool   `yaml:"global"`
}

// Load reads and parses a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	for ci, c := range f.Controllers {
		if c.Name == "" {
			return nil, fmt.Errorf("parse manifest: controller %d has no name", ci)
		}
		for _, m := range c.Methods {
			if m.Name == "" {
				return nil, fmt.Errorf("parse manifest: controller %s has an unnamed method", c.Name)
			}
			for _, r := range m.Routes {
				verb := router.Verb(strings.ToUpper(r.Verb))
				if !verb.Valid() {
					return nil, fmt.Errorf("parse manifest: unknown verb %q on %s#%s", r.Verb, c.Name, m.Name)
				}
			}
		}
	}
	return &f, nil
}

// Apply feeds every controller method through the builder. Errors are
// accumulated so one bad method does not hide problems in others.
func (f *File) Apply(b *router.Builder) error {
	var errs error
	for _, c := range f.Controllers {
		bean := router.BeanRef{TypeName: c.Name}
		for _, m := range c.Methods {
			errs = multierr.Append(errs, b.ProcessMethod(bean, m.methodRef(c.Name), m.metadata()))
		}
	}
	return errs
}

func (m Method) methodRef(controller string) router.MethodRef {
	ref := router.MethodRef{
		Name:          m.Name,
		DeclaringType: controller,
		ReturnType:    m.Returns,
	}
	for _, p := range m.Params {
		ref.Params = append(ref.Params, router.Param{Type: p.Type, Throwable: p.Throwable})
	}
	return ref
}

func (m Method) metadata() router.Metadata {
	meta := router.Metadata{
		Consumes: m.Consumes,
		Produces: m.Produces,
	}
	for _, r := range m.Routes {
		meta.Routes = append(meta.Routes, r.annotation())
	}
	if m.Mapping != nil {
		ann := m.Mapping.annotation()
		meta.Mapping = &ann
	}
	return meta
}

func (r Route) annotation() router.Annotation {
	uri := "/"
	if r.URI != nil {
		uri = *r.URI
	}
	return router.Annotation{
		Verb:               router.Verb(strings.ToUpper(r.Verb)),
		URI:                uri,
		Consumes:           r.Consumes,
		Produces:           r.Produces,
		HeadRoute:          r.HeadRoute,
		Exception:          r.Exception,
		ExceptionThrowable: r.Throwable,
		Status:             r.Status,
		Global:             r.Global,
	}
}

package router

import "strings"

// NamingStrategy converts bean and method identities into URI path
// segments. Implementations must be pure: the builder calls them during
// route construction and expects stable results.
type NamingStrategy interface {
	// BaseURI returns the root URI for every route declared by the bean.
	BaseURI(bean BeanRef) string

	// MethodURI returns the URI fragment for a method name. It is used
	// when a route annotation carries no explicit URI.
	MethodURI(methodName string) string
}

// HyphenatedNamingStrategy derives URIs by lower-hyphenating camel-case
// names. A trailing "Controller" suffix on the bean type is dropped, so
// BookShopController maps to /book-shop. This is the default strategy.
type HyphenatedNamingStrategy struct{}

func (HyphenatedNamingStrategy) BaseURI(bean BeanRef) string {
	name := simpleTypeName(bean.TypeName)
	name = strings.TrimSuffix(name, "Controller")
	if name == "" {
		return "/"
	}
	return "/" + camelToKebab(name)
}

func (HyphenatedNamingStrategy) MethodURI(methodName string) string {
	return camelToKebab(methodName)
}

// simpleTypeName strips any package or outer-type qualifier.
func simpleTypeName(name string) string {
	if i := strings.LastIndexAny(name, "./"); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Convert CamelCase to kebab-case.
func camelToKebab(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('-')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}

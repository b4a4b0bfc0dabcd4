package router

import "strings"

// resolveURI computes the absolute URI template for one route: the
// naming strategy's base URI for the bean, nested with either the
// annotation's explicit template or the strategy's fragment for the
// method name.
func resolveURI(bean BeanRef, explicit string, method MethodRef, naming NamingStrategy) string {
	root := naming.BaseURI(bean)
	if explicit != "" {
		return nestURI(root, explicit)
	}
	return nestURI(root, naming.MethodURI(method.Name))
}

// nestURI joins a child segment onto a root template with exactly one
// separator between them. Template placeholders like {id} pass through
// verbatim.
func nestURI(root, child string) string {
	root = strings.TrimSuffix(root, "/")
	child = strings.TrimPrefix(child, "/")
	if child == "" {
		if root == "" {
			return "/"
		}
		return root
	}
	return root + "/" + child
}

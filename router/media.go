package router

import (
	"errors"
	"mime"
	"strings"
)

// MediaType is a parsed media-type value. Name is the normalized
// "type/subtype" form without parameters.
type MediaType struct {
	Name    string
	Type    string
	Subtype string
	Params  map[string]string
}

// Common media types.
var (
	ApplicationJSON = MediaType{Name: "application/json", Type: "application", Subtype: "json"}
	ApplicationXML  = MediaType{Name: "application/xml", Type: "application", Subtype: "xml"}
	TextPlain       = MediaType{Name: "text/plain", Type: "text", Subtype: "plain"}
	TextHTML        = MediaType{Name: "text/html", Type: "text", Subtype: "html"}
)

// defaultMediaTypes is the system fallback applied when neither the
// annotation nor the method supplies media types.
var defaultMediaTypes = []MediaType{ApplicationJSON}

// ParseMediaType parses a single media-type string such as
// "application/json; charset=utf-8".
func ParseMediaType(value string) (MediaType, error) {
	name, params, err := mime.ParseMediaType(value)
	if err != nil {
		return MediaType{}, err
	}
	slash := strings.IndexByte(name, '/')
	if slash <= 0 || slash == len(name)-1 {
		return MediaType{}, errors.New("media type must be of the form type/subtype")
	}
	mt := MediaType{
		Name:    name,
		Type:    name[:slash],
		Subtype: name[slash+1:],
	}
	if len(params) > 0 {
		mt.Params = params
	}
	return mt, nil
}

func (m MediaType) String() string {
	return m.Name
}

// parseMediaTypes parses each value, reporting the first malformed one
// against the owning method.
func parseMediaTypes(method MethodRef, values []string) ([]MediaType, error) {
	if len(values) == 0 {
		return nil, nil
	}
	types := make([]MediaType, 0, len(values))
	for _, v := range values {
		mt, err := ParseMediaType(v)
		if err != nil {
			return nil, &MalformedMediaTypeError{
				Method: method.DeclaringType + "#" + method.Name,
				Value:  v,
				Err:    err,
			}
		}
		types = append(types, mt)
	}
	return types, nil
}

// resolveMediaTypes applies the resolution precedence: the annotation's
// own values, then the method-level fallback, then the system default.
// The result is never empty.
func resolveMediaTypes(method MethodRef, values, fallback []string) ([]MediaType, error) {
	if len(values) == 0 {
		values = fallback
	}
	types, err := parseMediaTypes(method, values)
	if err != nil {
		return nil, err
	}
	if len(types) == 0 {
		return defaultMediaTypes, nil
	}
	return types, nil
}

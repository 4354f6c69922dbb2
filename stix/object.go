package stix

// Object is a single raw STIX object: an open mapping from property
// names to JSON-shaped values (string, number, bool, nil, []any,
// map[string]any). Unknown properties are preserved verbatim.
type Object map[string]any

// Type returns the declared object type, or "" if the "type" property
// is missing or not a string.
func (o Object) Type() string {
	t, _ := o["type"].(string)
	return t
}

// ID returns the object identifier, or "" if the "id" property is
// missing or not a string.
func (o Object) ID() string {
	id, _ := o["id"].(string)
	return id
}

// Attrs returns the object's full property mapping as graph attributes.
// The top-level map is copied, and slice and map values get fresh
// headers, so mutating the returned attributes never aliases back into
// the bundle the object came from. Values themselves are not coerced.
func (o Object) Attrs() map[string]any {
	attrs := make(map[string]any, len(o))
	for key, value := range o {
		switch v := value.(type) {
		case []any:
			attrs[key] = append([]any(nil), v...)
		case map[string]any:
			m := make(map[string]any, len(v))
			for k, mv := range v {
				m[k] = mv
			}
			attrs[key] = m
		default:
			attrs[key] = value
		}
	}
	return attrs
}

// Bundle is a parsed STIX bundle: a mapping with at least an "objects"
// sequence. Like Object, it is open-schema.
type Bundle map[string]any

// ID returns the bundle identifier, or "" if absent.
func (b Bundle) ID() string {
	id, _ := b["id"].(string)
	return id
}

// Objects returns the bundle's object sequence. The second return is
// false when the "objects" property is absent or not a sequence; such a
// bundle carries nothing convertible. Elements are returned untyped
// because a malformed bundle may hold non-mapping entries, and the
// converter reports those per-element rather than rejecting the bundle.
func (b Bundle) Objects() ([]any, bool) {
	objs, ok := b["objects"].([]any)
	return objs, ok
}

package stix

import (
	"fmt"
	"sort"
)

// ExtractEmbedded lifts legacy STIX 2.0 embedded observables out of an
// observed-data object. In the 2.0 wire format, observed-data carries a
// nested "objects" mapping whose keys are index strings ("0", "1", ...)
// and whose values are inline observable objects without identifiers.
//
// Each entry with a non-empty declared type becomes a standalone Object:
// a shallow copy of the embedded mapping with a synthetic identifier
// {parent-id}--embedded-{key}. The synthesis is deterministic, so
// re-extracting the same observed-data yields identical identifiers.
// Entries without a type cannot be classified and are dropped.
//
// Returns nil when the nested mapping is absent or not a mapping, which
// is the normal case for STIX 2.1 observed-data.
func ExtractEmbedded(observed Object) []Object {
	embedded, ok := observed["objects"].(map[string]any)
	if !ok {
		return nil
	}

	parentID := observed.ID()
	if parentID == "" {
		parentID = "observed-data--unknown"
	}

	keys := make([]string, 0, len(embedded))
	for key := range embedded {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out []Object
	for _, key := range keys {
		entry, ok := embedded[key].(map[string]any)
		if !ok {
			continue
		}
		if t, _ := entry["type"].(string); t == "" {
			continue
		}
		obj := make(Object, len(entry)+1)
		for k, v := range entry {
			obj[k] = v
		}
		obj["id"] = fmt.Sprintf("%s--embedded-%s", parentID, key)
		out = append(out, obj)
	}
	return out
}

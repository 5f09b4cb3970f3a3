package model

import "encoding/json"

// FromMap converts a generic aggregate (the shape the repository layer
// and HTTP callers produce) into a typed CVDocument. Unknown keys and
// wrong-typed values are dropped rather than rejected; a completely
// empty map yields a usable zero document.
func FromMap(m map[string]interface{}) *CVDocument {
	doc := &CVDocument{}
	if m == nil {
		return doc
	}
	// The round-trip through JSON gives us the same tolerant coercion
	// rules the schema validator sees, without a field-by-field walk.
	b, err := json.Marshal(m)
	if err != nil {
		return doc
	}
	_ = json.Unmarshal(b, doc)
	return doc
}

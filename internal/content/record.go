package content

import "time"

// Record is a single schemaless content document. At the store boundary the
// canonical fields are "id" (hex string), "createdAt" and "updatedAt"
// (time.Time); everything else is collection-specific and passed through
// untouched.
type Record map[string]any

// ID returns the record id, or "" when unset.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// StringField returns the named field as a string ("" when absent or not a string).
func (r Record) StringField(name string) string {
	if name == "" {
		return ""
	}
	v, _ := r[name].(string)
	return v
}

// IsActive reports whether the record carries isActive == true.
func (r Record) IsActive() bool {
	v, _ := r["isActive"].(bool)
	return v
}

// Clone returns a shallow copy. Stores hand out clones so callers cannot
// mutate stored state through the returned map.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// immutable fields a client-supplied patch may never override
var immutableFields = []string{"id", "_id", "createdAt"}

// StripImmutable removes client-supplied values for fields the store owns.
func StripImmutable(fields map[string]any) {
	for _, k := range immutableFields {
		delete(fields, k)
	}
	delete(fields, "updatedAt")
}

// less orders two records by the given field for in-memory sorting.
// Handles the value types that occur in practice: time.Time, string, numbers.
func less(a, b Record, field string) bool {
	av, bv := a[field], b[field]
	switch x := av.(type) {
	case time.Time:
		if y, ok := bv.(time.Time); ok {
			return x.Before(y)
		}
	case string:
		if y, ok := bv.(string); ok {
			return x < y
		}
	case float64:
		if y, ok := bv.(float64); ok {
			return x < y
		}
	case int:
		if y, ok := bv.(int); ok {
			return x < y
		}
	case int64:
		if y, ok := bv.(int64); ok {
			return x < y
		}
	}
	return false
}

package codec

// FieldSet offers typed helpers on top of a decoded record.
type FieldSet struct {
	data map[string]any
}

// Fields wraps a decoded record.
func Fields(rec map[string]any) FieldSet {
	return FieldSet{data: rec}
}

// Float returns the field coerced to float64. Null fields (NaN sentinels)
// and missing keys report ok=false.
func (fs FieldSet) Float(key string) (float64, bool) {
	v, present := fs.data[key]
	if !present {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case uint64:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Uint returns the field coerced to uint64.
func (fs FieldSet) Uint(key string) (uint64, bool) {
	v, present := fs.data[key]
	if !present {
		return 0, false
	}
	switch n := v.(type) {
	case uint64:
		return n, true
	case float64:
		return uint64(n), true
	case int:
		return uint64(n), true
	default:
		return 0, false
	}
}

// Flag reports whether a bit-flag field is present and set.
func (fs FieldSet) Flag(key string) bool {
	n, ok := fs.Uint(key)
	return ok && n != 0
}

// Has reports whether the key exists in the record, null or not.
func (fs FieldSet) Has(key string) bool {
	_, present := fs.data[key]
	return present
}

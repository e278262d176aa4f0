package p4marshal

import "strconv"

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	// KindString is a byte string. Perforce emits field values as raw
	// bytes; they are usually UTF-8 but a few fields (user full names,
	// notably) can arrive in other encodings, so no validation is applied.
	KindString Kind = iota + 1

	// KindInt is a 32-bit signed integer.
	KindInt
)

// Value is one marshaled dictionary value: either a byte string or a 32-bit
// signed integer. The zero Value has no kind and is not encodable.
type Value struct {
	kind Kind
	str  string
	num  int32
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Int returns an integer Value.
func Int(n int32) Value {
	return Value{kind: KindInt, num: n}
}

// Kind reports the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Text returns the value in textual form: the string itself for KindString,
// the decimal representation for KindInt.
func (v Value) Text() string {
	if v.kind == KindInt {
		return strconv.FormatInt(int64(v.num), 10)
	}
	return v.str
}

// Int returns the integer value, or 0 if v is not KindInt.
func (v Value) Int() int32 {
	if v.kind != KindInt {
		return 0
	}
	return v.num
}

// Record is an ordered dictionary of string keys to marshal values. Insertion
// order is preserved on encode and reflects stream order after decode; the p4
// client is sensitive to field order when reading specs from standard input.
type Record struct {
	keys   []string
	values map[string]Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores v under key. Setting an existing key overwrites its value and
// keeps its original position.
func (r *Record) Set(key string, v Value) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// SetString stores a string value under key.
func (r *Record) SetString(key, s string) {
	r.Set(key, String(s))
}

// SetInt stores an integer value under key.
func (r *Record) SetInt(key string, n int32) {
	r.Set(key, Int(n))
}

// Get returns the value under key, or the zero Value when absent.
func (r *Record) Get(key string) Value {
	return r.values[key]
}

// Lookup returns the value under key and whether it was present.
func (r *Record) Lookup(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Delete removes key from the record. It reports whether the key was present.
func (r *Record) Delete(key string) bool {
	if _, ok := r.values[key]; !ok {
		return false
	}
	delete(r.values, key)
	for i, k := range r.keys {
		if k == key {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the record's keys in insertion order. The returned slice is
// shared with the record and must not be mutated.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of keys.
func (r *Record) Len() int {
	return len(r.keys)
}

// Fields returns the record as a plain map of textual values, integers
// rendered in decimal. Key order is lost; use Keys for ordered traversal.
func (r *Record) Fields() map[string]string {
	fields := make(map[string]string, len(r.keys))
	for k, v := range r.values {
		fields[k] = v.Text()
	}
	return fields
}

// Equal reports whether two records hold the same keys, in the same order,
// with the same values.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	for i, k := range r.keys {
		if other.keys[i] != k {
			return false
		}
		if r.values[k] != other.values[k] {
			return false
		}
	}
	return true
}

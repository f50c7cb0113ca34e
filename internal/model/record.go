package model

import (
	"bytes"
	"encoding/json"
)

// Record is a string-keyed dictionary that remembers insertion order.
// Values are whatever the source file held: string, json.Number, bool, nil
// or json.RawMessage for nested objects and arrays.
// A nil *Record behaves as an empty record for reads.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record with room for capacity keys.
func NewRecord(capacity int) *Record {
	return &Record{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// RecordOf builds a record from alternating key/value pairs. Handy in tests.
func RecordOf(kv ...any) *Record {
	r := NewRecord(len(kv) / 2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		r.Set(key, kv[i+1])
	}
	return r
}

// Set stores value under key. An existing key keeps its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key and whether the key exists.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value for key, nil if absent.
func (r *Record) Value(key string) any {
	v, _ := r.Get(key)
	return v
}

// Has reports whether key exists, even with a null value.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Len returns the number of keys.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns a copy of the keys in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// Range calls fn for every entry in order until fn returns false.
func (r *Record) Range(fn func(key string, value any) bool) {
	if r == nil {
		return
	}
	for _, k := range r.keys {
		if !fn(k, r.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy.
func (r *Record) Clone() *Record {
	out := NewRecord(r.Len())
	r.Range(func(k string, v any) bool {
		out.Set(k, v)
		return true
	})
	return out
}

// MarshalJSON writes the entries in insertion order without HTML escaping.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	i := 0
	r.Range(func(k string, v any) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		if err = writeJSON(&buf, k); err != nil {
			return false
		}
		buf.WriteByte(':')
		err = writeJSON(&buf, v)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

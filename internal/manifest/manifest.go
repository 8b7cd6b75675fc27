package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Manifest is a string-keyed record that preserves key order. Nested objects
// are *Manifest values, arrays are []any, numbers are json.Number.
type Manifest struct {
	fields *orderedmap.OrderedMap[string, any]
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{fields: orderedmap.New[string, any]()}
}

// Len reports the number of keys. A nil manifest is empty.
func (m *Manifest) Len() int {
	if m == nil || m.fields == nil {
		return 0
	}
	return m.fields.Len()
}

// Get returns the value stored under key.
func (m *Manifest) Get(key string) (any, bool) {
	if m == nil || m.fields == nil {
		return nil, false
	}
	return m.fields.Get(key)
}

// Has reports whether key is present, even with a null value.
func (m *Manifest) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Set stores value under key. New keys are appended; existing keys keep their
// position.
func (m *Manifest) Set(key string, value any) {
	if m.fields == nil {
		m.fields = orderedmap.New[string, any]()
	}
	m.fields.Set(key, value)
}

// Delete removes key if present.
func (m *Manifest) Delete(key string) {
	if m == nil || m.fields == nil {
		return
	}
	m.fields.Delete(key)
}

// Keys returns the keys in document order.
func (m *Manifest) Keys() []string {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, m.fields.Len())
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Clone returns a deep copy. Nested manifests and arrays are copied; scalar
// values are shared.
func (m *Manifest) Clone() *Manifest {
	out := New()
	if m.Len() == 0 {
		return out
	}
	for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
		out.fields.Set(pair.Key, CloneValue(pair.Value))
	}
	return out
}

// CloneValue deep-copies manifest values.
func CloneValue(value any) any {
	switch v := value.(type) {
	case *Manifest:
		if v == nil {
			return nil
		}
		return v.Clone()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return value
	}
}

// MarshalJSON encodes the manifest compactly in key order. HTML characters are
// left unescaped so person strings like "Jane <jane@example.com>" survive.
func (m *Manifest) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	if m.fields != nil {
		first := true
		for pair := m.fields.Oldest(); pair != nil; pair = pair.Next() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			key, err := marshalValue(pair.Key)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			value, err := marshalValue(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("encode %q: %w", pair.Key, err)
			}
			buf.Write(value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func marshalValue(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Equal reports whether two manifest values encode to the same JSON.
func Equal(a, b any) bool {
	left, err := marshalValue(a)
	if err != nil {
		return false
	}
	right, err := marshalValue(b)
	if err != nil {
		return false
	}
	return bytes.Equal(left, right)
}

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrNotObject is returned when a document parses but its root is not a JSON
// object.
var ErrNotObject = errors.New("manifest root must be a JSON object")

// SyntaxError describes malformed JSON input.
type SyntaxError struct {
	// Offset is the byte offset after which the error was detected, or 0 when
	// unknown.
	Offset int64
	msg    string
}

func (e *SyntaxError) Error() string {
	if e.Offset > 0 {
		return fmt.Sprintf("invalid JSON at offset %d: %s", e.Offset, e.msg)
	}
	return "invalid JSON: " + e.msg
}

// Decode parses a JSON object into a Manifest, keeping key order at every
// depth.
func Decode(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, newSyntaxError(data)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, ErrNotObject
	}
	return decodeObject(root), nil
}

func newSyntaxError(data []byte) error {
	var probe any
	err := json.Unmarshal(data, &probe)
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return &SyntaxError{Offset: syntaxErr.Offset, msg: syntaxErr.Error()}
	case err != nil:
		return &SyntaxError{msg: err.Error()}
	default:
		return &SyntaxError{msg: "unrecognized document"}
	}
}

func decodeObject(result gjson.Result) *Manifest {
	out := New()
	result.ForEach(func(key, value gjson.Result) bool {
		out.Set(key.String(), decodeValue(value))
		return true
	})
	return out
}

func decodeValue(result gjson.Result) any {
	switch result.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return json.Number(result.Raw)
	case gjson.String:
		return result.String()
	default:
		if result.IsArray() {
			items := make([]any, 0)
			result.ForEach(func(_, value gjson.Result) bool {
				items = append(items, decodeValue(value))
				return true
			})
			return items
		}
		return decodeObject(result)
	}
}

package manifest

import (
	"fmt"

	"github.com/tidwall/pretty"
)

var layout = pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Encode renders the manifest as indented JSON terminated by a newline.
func Encode(m *Manifest) ([]byte, error) {
	if m == nil {
		m = New()
	}
	raw, err := m.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return pretty.PrettyOptions(raw, &layout), nil
}

package sink

import (
	"encoding/json"

	"github.com/matzehuels/mosaic/pkg/document"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	style   string
	compact bool
}

// WithJSONStyle records the style name in the output so the SVG can be
// reproduced from the JSON alone.
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

// WithJSONCompact disables indentation.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// RenderJSON serializes a layout document.
func RenderJSON(doc document.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}
	if r.style != "" {
		doc.Style = r.style
	}
	if r.compact {
		return json.Marshal(doc)
	}
	return document.Marshal(doc)
}

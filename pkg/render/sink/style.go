package sink

import (
	"bytes"
	"fmt"
	"html"

	errs "github.com/matzehuels/mosaic/pkg/errors"
)

// Style names accepted by StyleByName.
const (
	StyleSimple    = "simple"
	StyleWireframe = "wireframe"
)

// Styles lists the built-in style names.
var Styles = []string{StyleSimple, StyleWireframe}

// Style controls how tiles are drawn.
type Style interface {
	Name() string
	// RenderDefs writes the SVG <defs> content.
	RenderDefs(buf *bytes.Buffer)
	// RenderTile writes the shape of a cell, header or footer.
	RenderTile(buf *bytes.Buffer, t Tile)
	// RenderLabel writes a tile's label text.
	RenderLabel(buf *bytes.Buffer, t Tile)
}

// Tile is one drawable frame.
type Tile struct {
	ID         string
	Kind       string // "cell", "header" or "footer"
	Size       string // tile size name for cells
	Label      string
	X, Y, W, H float64
}

// CenterX returns the horizontal center.
func (t Tile) CenterX() float64 { return t.X + t.W/2 }

// CenterY returns the vertical center.
func (t Tile) CenterY() float64 { return t.Y + t.H/2 }

// StyleByName returns a built-in style.
func StyleByName(name string) (Style, error) {
	switch name {
	case "", StyleSimple:
		return Simple{}, nil
	case StyleWireframe:
		return Wireframe{}, nil
	}
	return nil, errs.New(errs.ErrCodeInvalidStyle, "unknown style %q (want %s or %s)", name, StyleSimple, StyleWireframe)
}

// =============================================================================
// Simple
// =============================================================================

// Simple fills cells with a colour per tile size.
type Simple struct{}

var fills = map[string]string{
	"small_square": "#8ecae6",
	"big_square":   "#219ebc",
	"small_banner": "#ffb703",
	"custom":       "#fb8500",
	"header":       "#dee2e6",
	"footer":       "#e9ecef",
}

func (Simple) Name() string { return StyleSimple }

func (Simple) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`    <style>text { font-family: ui-monospace, monospace; font-size: 12px; fill: #023047; }</style>` + "\n")
}

func (Simple) RenderTile(buf *bytes.Buffer, t Tile) {
	key := t.Size
	if t.Kind != "cell" {
		key = t.Kind
	}
	fill, ok := fills[key]
	if !ok {
		fill = "#adb5bd"
	}
	fmt.Fprintf(buf, `  <rect id="%s" class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="#ffffff" stroke-width="1"/>`+"\n",
		t.ID, t.Kind, t.X, t.Y, t.W, t.H, fill)
}

func (Simple) RenderLabel(buf *bytes.Buffer, t Tile) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
		t.CenterX(), t.CenterY(), html.EscapeString(t.Label))
}

// =============================================================================
// Wireframe
// =============================================================================

// Wireframe draws outlines only.
type Wireframe struct{}

func (Wireframe) Name() string { return StyleWireframe }

func (Wireframe) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`    <style>text { font-family: ui-monospace, monospace; font-size: 11px; fill: #495057; }</style>` + "\n")
}

func (Wireframe) RenderTile(buf *bytes.Buffer, t Tile) {
	dash := ""
	if t.Kind != "cell" {
		dash = ` stroke-dasharray="4 2"`
	}
	fmt.Fprintf(buf, `  <rect id="%s" class="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#212529" stroke-width="1"%s/>`+"\n",
		t.ID, t.Kind, t.X, t.Y, t.W, t.H, dash)
}

func (Wireframe) RenderLabel(buf *bytes.Buffer, t Tile) {
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f">%s</text>`+"\n", t.X+4, t.Y+14, html.EscapeString(t.Label))
}

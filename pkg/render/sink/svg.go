package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/geom"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      Style
	labels     bool
	sections   bool
	background string
}

func WithStyle(s Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithLabels prints the item path and tile size inside every cell.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithSectionFrames outlines each section's container frame.
func WithSectionFrames() SVGOption { return func(r *svgRenderer) { r.sections = true } }

func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: Simple{}}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = Simple{}
	}
	return r
}

// RenderSVG draws a layout document.
func RenderSVG(doc document.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	width := max(doc.Width, doc.ContentWidth)
	height := doc.Height

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if doc.Name != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(doc.Name))
	}

	buf.WriteString("  <defs>\n")
	r.style.RenderDefs(&buf)
	buf.WriteString("  </defs>\n")

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" x="0" y="0" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			width, height, html.EscapeString(r.background))
	}

	for _, sec := range doc.Sections {
		renderSection(&buf, &r, sec)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSection(buf *bytes.Buffer, r *svgRenderer, sec document.Section) {
	fmt.Fprintf(buf, `  <g id="section-%d" class="section">`+"\n", sec.Index)

	if sec.Header != nil {
		r.drawTile(buf, supplementary("header", sec.Index, *sec.Header))
	}
	for _, c := range sec.Cells {
		r.drawTile(buf, Tile{
			ID:    fmt.Sprintf("cell-%d-%d", sec.Index, c.Item),
			Kind:  "cell",
			Size:  c.Size,
			Label: fmt.Sprintf("%d.%d %s", sec.Index, c.Item, c.Size),
			X:     c.Frame.X, Y: c.Frame.Y, W: c.Frame.Width, H: c.Frame.Height,
		})
	}
	if sec.Footer != nil {
		r.drawTile(buf, supplementary("footer", sec.Index, *sec.Footer))
	}
	if r.sections {
		f := sec.Frame
		fmt.Fprintf(buf, `  <rect class="section-frame" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="#d62828" stroke-width="2" stroke-dasharray="8 4"/>`+"\n",
			f.X, f.Y, f.Width, f.Height)
	}

	buf.WriteString("  </g>\n")
}

func (r *svgRenderer) drawTile(buf *bytes.Buffer, t Tile) {
	r.style.RenderTile(buf, t)
	if r.labels {
		r.style.RenderLabel(buf, t)
	}
}

func supplementary(kind string, section int, f geom.Rect) Tile {
	return Tile{
		ID:    fmt.Sprintf("%s-%d", kind, section),
		Kind:  kind,
		Label: fmt.Sprintf("%s %d", kind, section),
		X:     f.X, Y: f.Y, W: f.Width, H: f.Height,
	}
}

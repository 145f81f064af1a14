package treeview

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/geom"
)

// Options configures tree diagram rendering.
type Options struct {
	// Detailed adds grid and pixel frames to node labels.
	Detailed bool
}

var sizeColors = map[string]string{
	"small_square": "#8ecae6",
	"big_square":   "#219ebc",
	"small_banner": "#ffb703",
	"custom":       "#fb8500",
}

// ToDOT converts a layout document to Graphviz DOT.
func ToDOT(doc document.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	root := "layout"
	rootLabel := fmt.Sprintf("%s\n%gx%g", orDefault(doc.Name, "layout"), doc.Width, doc.Height)
	fmt.Fprintf(&buf, "  %q [label=%q, shape=folder];\n", root, rootLabel)

	for _, sec := range doc.Sections {
		sid := fmt.Sprintf("s%d", sec.Index)
		label := fmt.Sprintf("section %d\n%d rows", sec.Index, sec.Rows)
		if opts.Detailed {
			label += "\n" + fmtRect(sec.Frame)
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=\"#f1f3f5\"];\n", sid, label)
		fmt.Fprintf(&buf, "  %q -> %q;\n", root, sid)

		if sec.Header != nil {
			writeSupplementary(&buf, sid, "header", *sec.Header, opts)
		}
		for _, c := range sec.Cells {
			cid := fmt.Sprintf("%s.%d", sid, c.Item)
			fmt.Fprintf(&buf, "  %q [%s];\n", cid, strings.Join(cellAttrs(sec.Index, c, opts), ", "))
			fmt.Fprintf(&buf, "  %q -> %q;\n", sid, cid)
		}
		if sec.Footer != nil {
			writeSupplementary(&buf, sid, "footer", *sec.Footer, opts)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func cellAttrs(section int, c document.Cell, opts Options) []string {
	label := fmt.Sprintf("%d.%d\n%s", section, c.Item, c.Size)
	if opts.Detailed {
		label += fmt.Sprintf("\ngrid %d,%d %dx%d\n%s", c.Grid.X, c.Grid.Y, c.Grid.W, c.Grid.H, fmtRect(c.Frame))
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if color, ok := sizeColors[c.Size]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", color))
	}
	return attrs
}

func writeSupplementary(buf *bytes.Buffer, sid, kind string, f geom.Rect, opts Options) {
	id := sid + "." + kind
	label := kind
	if opts.Detailed {
		label += "\n" + fmtRect(f)
	}
	fmt.Fprintf(buf, "  %q [label=%q, style=\"rounded,dashed\"];\n", id, label)
	fmt.Fprintf(buf, "  %q -> %q [style=dashed];\n", sid, id)
}

func fmtRect(r geom.Rect) string {
	return fmt.Sprintf("(%g, %g) %gx%g", r.X, r.Y, r.Width, r.Height)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the diagram scales from the
// origin regardless of the offsets Graphviz emits.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

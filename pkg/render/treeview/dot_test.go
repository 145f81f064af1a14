package treeview

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
)

func sampleDoc() document.Layout {
	header := geom.NewRect(0, 0, 300, 20)
	return document.Layout{
		Name:      "demo",
		GridWidth: 3,
		Width:     300,
		Height:    220,
		Sections: []document.Section{{
			Index:  0,
			Rows:   2,
			Frame:  geom.NewRect(0, 0, 300, 220),
			Header: &header,
			Cells: []document.Cell{
				{Item: 0, Size: "big_square", Grid: grid.R(0, 0, 2, 2), Frame: geom.NewRect(0, 20, 200, 200)},
				{Item: 1, Size: "small_square", Grid: grid.R(2, 0, 1, 1), Frame: geom.NewRect(200, 20, 100, 100)},
			},
		}},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sampleDoc(), Options{})

	for _, want := range []string{
		"digraph G {",
		`"layout" -> "s0";`,
		`"s0" -> "s0.0";`,
		`"s0" -> "s0.1";`,
		`"s0" -> "s0.header" [style=dashed];`,
		`fillcolor="#219ebc"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q", want)
		}
	}
	if strings.Contains(dot, "grid 0,0") {
		t.Error("ToDOT() should not include frames unless detailed")
	}
	if strings.Contains(dot, "footer") {
		t.Error("ToDOT() should skip absent footer")
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleDoc(), Options{Detailed: true})
	if !strings.Contains(dot, `grid 0,0 2x2\n(0, 20) 200x200`) {
		t.Errorf("ToDOT() detailed label missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleDoc(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), `not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

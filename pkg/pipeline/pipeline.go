// Package pipeline runs scene → layout → artifacts for the CLI and the API.
//
// # Stages
//
//  1. Layout: prepare a [layout.Result] from a scene and export it as a
//     [document.Layout].
//  2. Render: produce the requested artifacts (SVG, JSON, DOT, frame-tree
//     SVG, PDF, PNG) from the document. Formats render concurrently.
//
// Each stage can run alone. [Runner] adds caching on top of both.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Execute(ctx, pipeline.Options{
//	    Scene:   sc,
//	    Formats: []string{"svg", "json"},
//	})
//	svg := res.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/cache"
	"github.com/matzehuels/mosaic/pkg/document"
	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/render/sink"
	"github.com/matzehuels/mosaic/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultStyle is the default SVG style.
const DefaultStyle = sink.StyleSimple

// DefaultPNGScale is the resolution multiplier for PNG output.
const DefaultPNGScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatTree = "tree"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatJSON, FormatDOT, FormatTree, FormatPDF, FormatPNG}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It doubles as the API request body.
type Options struct {
	Scene *scene.Scene `json:"scene"`

	// Layout options. Zero keeps the scene's own value.
	GridWidth int     `json:"grid_width,omitempty"`
	Viewport  float64 `json:"viewport_width,omitempty"`
	Refresh   bool    `json:"refresh,omitempty"`

	// Render options
	Formats       []string `json:"formats,omitempty"`
	Style         string   `json:"style,omitempty"`
	Labels        bool     `json:"labels,omitempty"`
	SectionFrames bool     `json:"section_frames,omitempty"`
	Detailed      bool     `json:"detailed,omitempty"`
	Background    string   `json:"background,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Layout    document.Layout
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timing and size information.
type Stats struct {
	Sections   int
	Items      int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from cache.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format %q (must be one of: %s)",
			format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that style names a built-in SVG style.
func ValidateStyle(style string) error {
	if !slices.Contains(sink.Styles, style) {
		return errs.New(errs.ErrCodeInvalidStyle, "invalid style %q (must be one of: %s)",
			style, strings.Join(sink.Styles, ", "))
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the scene with the layout overrides applied.
func (o *Options) ValidateForLayout() error {
	if o.Scene == nil {
		return errs.New(errs.ErrCodeInvalidInput, "scene is required")
	}
	if o.GridWidth != 0 {
		if err := grid.ValidateWidth(o.GridWidth); err != nil {
			return err
		}
	}
	if o.Viewport < 0 {
		return errs.New(errs.ErrCodeInvalidInput, "viewport width must not be negative")
	}
	o.setLogger()
	return o.EffectiveScene().Validate()
}

// ValidateForRender fills render defaults and checks formats and style.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	o.setLogger()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
}

// EffectiveScene returns the scene with the option overrides applied. The
// options' scene is not modified.
func (o *Options) EffectiveScene() *scene.Scene {
	sc := *o.Scene
	if o.GridWidth != 0 {
		sc.GridWidth = o.GridWidth
	}
	if o.Viewport > 0 {
		sc.Viewport = o.Viewport
	}
	return &sc
}

// LayoutKeyOpts returns the cache key fields for the layout stage.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{GridWidth: o.GridWidth, Viewport: o.Viewport}
}

// ArtifactKeyOpts returns the cache key fields for one artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPDF, FormatPNG:
		k.Style = o.Style
		k.Labels = o.Labels
		k.Detailed = o.SectionFrames
		k.Background = o.Background
	case FormatDOT, FormatTree:
		k.Detailed = o.Detailed
	case FormatJSON:
		k.Style = o.Style
	}
	return k
}

package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
)

// Option configures a Builder.
type Option func(*config)

type config struct {
	gridWidth     int
	contentInsets geom.Insets
	allowed       func(IndexPath) []grid.TileSize
	custom        func(IndexPath) (geom.Size, bool)
	inset         func(section int) geom.Insets
	interItem     func(section int) float64
	line          func(section int) float64
	header        func(section int) (geom.Size, bool)
	footer        func(section int) (geom.Size, bool)
	logger        *log.Logger
}

func defaultConfig() config {
	return config{
		gridWidth: grid.DefaultWidth,
		allowed:   func(IndexPath) []grid.TileSize { return nil },
		custom:    func(IndexPath) (geom.Size, bool) { return geom.Size{}, false },
		inset:     func(int) geom.Insets { return geom.Insets{} },
		interItem: func(int) float64 { return 0 },
		line:      func(int) float64 { return 0 },
		header:    func(int) (geom.Size, bool) { return geom.Size{}, false },
		footer:    func(int) (geom.Size, bool) { return geom.Size{}, false },
		logger:    log.New(io.Discard),
	}
}

// WithGridWidth sets the number of grid units across a section. Default 3.
func WithGridWidth(w int) Option { return func(c *config) { c.gridWidth = w } }

// WithContentInsets sets insets of the scroll container. Left and Right
// reduce the width available to sections.
func WithContentInsets(in geom.Insets) Option { return func(c *config) { c.contentInsets = in } }

// WithAllowedSizes restricts the tile sizes an item may take. An empty
// result means unrestricted.
func WithAllowedSizes(fn func(IndexPath) []grid.TileSize) Option {
	return func(c *config) {
		if fn != nil {
			c.allowed = fn
		}
	}
}

// WithCustomSize declares pixel sizes for items. An item with a declared
// size becomes a custom tile.
func WithCustomSize(fn func(IndexPath) (geom.Size, bool)) Option {
	return func(c *config) {
		if fn != nil {
			c.custom = fn
		}
	}
}

// WithSectionInset sets per-section insets.
func WithSectionInset(fn func(section int) geom.Insets) Option {
	return func(c *config) {
		if fn != nil {
			c.inset = fn
		}
	}
}

// WithInterItemSpacing sets the horizontal gap between grid columns.
func WithInterItemSpacing(fn func(section int) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.interItem = fn
		}
	}
}

// WithLineSpacing sets the vertical gap between grid rows.
func WithLineSpacing(fn func(section int) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.line = fn
		}
	}
}

// WithHeaderSize declares section headers.
func WithHeaderSize(fn func(section int) (geom.Size, bool)) Option {
	return func(c *config) {
		if fn != nil {
			c.header = fn
		}
	}
}

// WithFooterSize declares section footers.
func WithFooterSize(fn func(section int) (geom.Size, bool)) Option {
	return func(c *config) {
		if fn != nil {
			c.footer = fn
		}
	}
}

// WithLogger sets the logger for pass summaries. Default discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

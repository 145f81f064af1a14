package layout

import (
	"fmt"
	"time"

	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/frame"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
)

// Builder runs layout passes for a data source. A Builder holds no state
// between passes; every call to Prepare recomputes from scratch.
type Builder struct {
	src DataSource
	cfg config
}

// New returns a Builder for src.
func New(src DataSource, opts ...Option) *Builder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Builder{src: src, cfg: cfg}
}

// GridWidth returns the configured grid width.
func (b *Builder) GridWidth() int { return b.cfg.gridWidth }

// ContentWidth returns the viewport width minus the horizontal content
// insets.
func (b *Builder) ContentWidth() float64 {
	return b.src.ViewportWidth() - b.cfg.contentInsets.Horizontal()
}

// Prepare runs a full layout pass. An empty data source yields an empty
// result. Errors are returned only for an unusable grid width or a broken
// size resolution invariant.
func (b *Builder) Prepare() (*Result, error) {
	start := time.Now()
	if err := grid.ValidateWidth(b.cfg.gridWidth); err != nil {
		return nil, err
	}

	grids, err := b.buildSections()
	if err != nil {
		return nil, err
	}
	res := b.computeFrames(grids)
	res.index = buildIndex(res.tree)

	b.cfg.logger.Debug("layout prepared",
		"sections", len(grids),
		"items", len(res.index),
		"content", fmt.Sprintf("%gx%g", res.contentSize.Width, res.contentSize.Height),
		"duration", time.Since(start))
	return res, nil
}

// buildSections resolves a tile size for every item and packs each section.
func (b *Builder) buildSections() ([]*grid.Section, error) {
	n := max(b.src.SectionCount(), 0)
	grids := make([]*grid.Section, n)
	for s := range n {
		items, err := b.sectionItems(s)
		if err != nil {
			return nil, err
		}
		g, err := grid.NewSection(items, b.cfg.gridWidth)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", s, err)
		}
		grids[s] = g
	}
	return grids, nil
}

// sectionItems applies the distribution heuristic: one big square for every
// gridWidth small or big squares, starting with a big one.
func (b *Builder) sectionItems(section int) ([]grid.CellItem, error) {
	count := max(b.src.ItemCount(section), 0)
	items := make([]grid.CellItem, count)
	bigs, consumed := 0, 0

	for i := range count {
		path := IndexPath{Section: section, Item: i}
		allowed := b.cfg.allowed(path)

		var candidate grid.TileSize
		switch {
		case b.hasCustom(path):
			candidate = grid.CustomOverride
		case bigs*b.cfg.gridWidth < consumed+1:
			candidate = grid.BigSquare
		default:
			candidate = grid.SmallSquare
		}

		size := grid.Resolve(candidate, allowed)
		item, err := grid.NewCellItem(size, allowed...)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "resolve item %s", path)
		}
		items[i] = item

		switch size {
		case grid.BigSquare:
			bigs++
			consumed++
		case grid.SmallSquare:
			consumed++
		}
	}
	return items, nil
}

func (b *Builder) hasCustom(path IndexPath) bool {
	_, ok := b.cfg.custom(path)
	return ok
}

// computeFrames stacks the sections vertically starting at y = 0.
func (b *Builder) computeFrames(grids []*grid.Section) *Result {
	contentWidth := b.ContentWidth()
	res := &Result{
		grids:        grids,
		gridWidth:    b.cfg.gridWidth,
		contentWidth: contentWidth,
	}

	var cursor float64
	for s, g := range grids {
		in := frame.SectionInput{
			Grid:             g,
			Top:              cursor,
			ContentWidth:     contentWidth,
			Inset:            b.cfg.inset(s),
			InterItemSpacing: b.cfg.interItem(s),
			LineSpacing:      b.cfg.line(s),
			CustomSizes:      make([]geom.Size, g.Len()),
		}
		if size, ok := b.cfg.header(s); ok {
			in.Header = size
		}
		if size, ok := b.cfg.footer(s); ok {
			in.Footer = size
		}
		for i := range in.CustomSizes {
			if size, ok := b.cfg.custom(IndexPath{Section: s, Item: i}); ok {
				in.CustomSizes[i] = size
			}
		}

		sec := frame.Compose(in)
		res.tree = res.tree.Append(sec)
		cursor = sec.Extent()
	}

	res.contentSize = res.tree.ContentSize()
	return res
}

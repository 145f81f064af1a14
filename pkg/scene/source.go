package scene

import (
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/layout"
)

// SectionCount implements layout.DataSource.
func (s *Scene) SectionCount() int { return len(s.Sections) }

// ItemCount implements layout.DataSource.
func (s *Scene) ItemCount(section int) int { return s.section(section).Items }

// ViewportWidth implements layout.DataSource.
func (s *Scene) ViewportWidth() float64 { return s.Viewport }

// Options returns the layout hooks described by the scene.
func (s *Scene) Options() []layout.Option {
	return []layout.Option{
		layout.WithGridWidth(s.EffectiveGridWidth()),
		layout.WithContentInsets(s.ContentInsets),
		layout.WithSectionInset(func(i int) geom.Insets { return s.section(i).Inset }),
		layout.WithInterItemSpacing(func(i int) float64 { return s.section(i).InterItemSpacing }),
		layout.WithLineSpacing(func(i int) float64 { return s.section(i).LineSpacing }),
		layout.WithHeaderSize(func(i int) (geom.Size, bool) { return deref(s.section(i).Header) }),
		layout.WithFooterSize(func(i int) (geom.Size, bool) { return deref(s.section(i).Footer) }),
		layout.WithAllowedSizes(func(p layout.IndexPath) []grid.TileSize {
			o, _ := s.override(p)
			return o.Allowed
		}),
		layout.WithCustomSize(func(p layout.IndexPath) (geom.Size, bool) {
			o, _ := s.override(p)
			return deref(o.Size)
		}),
	}
}

// Builder returns a layout builder for the scene. Extra options are applied
// after the scene's own.
func (s *Scene) Builder(extra ...layout.Option) *layout.Builder {
	return layout.New(s, append(s.Options(), extra...)...)
}

func deref(size *geom.Size) (geom.Size, bool) {
	if size == nil {
		return geom.Size{}, false
	}
	return *size, true
}

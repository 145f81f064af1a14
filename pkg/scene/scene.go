package scene

import (
	"slices"

	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/grid"
	"github.com/matzehuels/mosaic/pkg/layout"
)

// MaxItems bounds the items of one scene. Placement cost grows steeply
// with the item count.
const MaxItems = 1000

// Scene is a complete collection description.
type Scene struct {
	Name          string      `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`
	Viewport      float64     `json:"viewport_width" toml:"viewport_width" yaml:"viewport_width"`
	GridWidth     int         `json:"grid_width,omitempty" toml:"grid_width,omitempty" yaml:"grid_width,omitempty"`
	ContentInsets geom.Insets `json:"content_insets" toml:"content_insets" yaml:"content_insets"`
	Sections      []Section   `json:"sections" toml:"sections" yaml:"sections"`
}

// Section describes one section of a scene.
type Section struct {
	Items            int         `json:"items" toml:"items" yaml:"items"`
	Inset            geom.Insets `json:"inset" toml:"inset" yaml:"inset"`
	InterItemSpacing float64     `json:"inter_item_spacing,omitempty" toml:"inter_item_spacing,omitempty" yaml:"inter_item_spacing,omitempty"`
	LineSpacing      float64     `json:"line_spacing,omitempty" toml:"line_spacing,omitempty" yaml:"line_spacing,omitempty"`
	Header           *geom.Size  `json:"header,omitempty" toml:"header,omitempty" yaml:"header,omitempty"`
	Footer           *geom.Size  `json:"footer,omitempty" toml:"footer,omitempty" yaml:"footer,omitempty"`
	Overrides        []Override  `json:"overrides,omitempty" toml:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Override pins the size policy of one item.
type Override struct {
	Item    int             `json:"item" toml:"item" yaml:"item"`
	Allowed []grid.TileSize `json:"allowed,omitempty" toml:"allowed,omitempty" yaml:"allowed,omitempty"`
	Size    *geom.Size      `json:"size,omitempty" toml:"size,omitempty" yaml:"size,omitempty"`
}

// EffectiveGridWidth returns the grid width, defaulting to
// grid.DefaultWidth.
func (s *Scene) EffectiveGridWidth() int {
	if s.GridWidth == 0 {
		return grid.DefaultWidth
	}
	return s.GridWidth
}

// ItemTotal returns the number of items across all sections.
func (s *Scene) ItemTotal() int {
	n := 0
	for _, sec := range s.Sections {
		n += sec.Items
	}
	return n
}

// Validate checks that the scene can be laid out. Every failure carries
// INVALID_SCENE, except an unusable grid width which is INVALID_GRID.
func (s *Scene) Validate() error {
	if err := errs.ValidateName(s.Name); err != nil {
		return err
	}
	if s.Viewport <= 0 {
		return errs.New(errs.ErrCodeInvalidScene, "viewport_width must be positive, got %g", s.Viewport)
	}
	if s.GridWidth != 0 {
		if err := grid.ValidateWidth(s.GridWidth); err != nil {
			return err
		}
	}
	if err := checkInsets("content_insets", s.ContentInsets); err != nil {
		return err
	}
	if s.Viewport-s.ContentInsets.Horizontal() <= 0 {
		return errs.New(errs.ErrCodeInvalidScene, "content_insets leave no room inside viewport_width %g", s.Viewport)
	}
	contentWidth := s.Viewport - s.ContentInsets.Horizontal()
	for i := range s.Sections {
		if err := s.Sections[i].validate(i); err != nil {
			return err
		}
		if err := s.Sections[i].checkScale(i, contentWidth, s.EffectiveGridWidth()); err != nil {
			return err
		}
	}
	if n := s.ItemTotal(); n > MaxItems {
		return errs.New(errs.ErrCodeInvalidScene, "scene has %d items, limit is %d", n, MaxItems)
	}
	return nil
}

// checkScale rejects sections whose insets and spacing leave grid units
// without positive size.
func (sec *Section) checkScale(i int, contentWidth float64, gridWidth int) error {
	spacing := sec.InterItemSpacing * float64(gridWidth-1)
	if contentWidth-sec.Inset.Horizontal()-spacing <= 0 {
		return errs.New(errs.ErrCodeInvalidScene,
			"section %d: inset and inter_item_spacing leave no room in content width %g", i, contentWidth)
	}
	return nil
}

func (sec *Section) validate(i int) error {
	switch {
	case sec.Items < 0:
		return errs.New(errs.ErrCodeInvalidScene, "section %d: items must not be negative", i)
	case sec.InterItemSpacing < 0:
		return errs.New(errs.ErrCodeInvalidScene, "section %d: inter_item_spacing must not be negative", i)
	case sec.LineSpacing < 0:
		return errs.New(errs.ErrCodeInvalidScene, "section %d: line_spacing must not be negative", i)
	}
	if err := checkInsets("inset", sec.Inset); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidScene, err, "section %d", i)
	}
	if negative(sec.Header) {
		return errs.New(errs.ErrCodeInvalidScene, "section %d: header size must not be negative", i)
	}
	if negative(sec.Footer) {
		return errs.New(errs.ErrCodeInvalidScene, "section %d: footer size must not be negative", i)
	}

	seen := make(map[int]bool, len(sec.Overrides))
	for _, o := range sec.Overrides {
		if o.Item < 0 || o.Item >= sec.Items {
			return errs.New(errs.ErrCodeInvalidScene, "section %d: override item %d out of range [0,%d)", i, o.Item, sec.Items)
		}
		if seen[o.Item] {
			return errs.New(errs.ErrCodeInvalidScene, "section %d: duplicate override for item %d", i, o.Item)
		}
		seen[o.Item] = true
		for _, a := range o.Allowed {
			if !a.Valid() {
				return errs.New(errs.ErrCodeInvalidScene, "section %d: item %d: invalid tile size %d", i, o.Item, int(a))
			}
		}
		if negative(o.Size) {
			return errs.New(errs.ErrCodeInvalidScene, "section %d: item %d: custom size must not be negative", i, o.Item)
		}
	}
	return nil
}

func negative(size *geom.Size) bool {
	return size != nil && (size.Width < 0 || size.Height < 0)
}

func checkInsets(field string, in geom.Insets) error {
	if in.Top < 0 || in.Left < 0 || in.Bottom < 0 || in.Right < 0 {
		return errs.New(errs.ErrCodeInvalidScene, "%s must not be negative", field)
	}
	return nil
}

// override returns the override for an item, if any.
func (s *Scene) override(p layout.IndexPath) (Override, bool) {
	if p.Section < 0 || p.Section >= len(s.Sections) {
		return Override{}, false
	}
	i := slices.IndexFunc(s.Sections[p.Section].Overrides, func(o Override) bool { return o.Item == p.Item })
	if i < 0 {
		return Override{}, false
	}
	return s.Sections[p.Section].Overrides[i], true
}

func (s *Scene) section(i int) Section {
	if i < 0 || i >= len(s.Sections) {
		return Section{}
	}
	return s.Sections[i]
}

package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mosaic/pkg/geom"
)

// DataSource supplies the shape of the collection. Everything else about a
// layout is configured with options.
type DataSource interface {
	SectionCount() int
	ItemCount(section int) int
	ViewportWidth() float64
}

// StaticSource is a DataSource backed by fixed counts.
type StaticSource struct {
	Width float64
	Items []int
}

// Counts returns a StaticSource with one section per entry of items.
func Counts(width float64, items ...int) StaticSource {
	return StaticSource{Width: width, Items: items}
}

func (s StaticSource) SectionCount() int { return len(s.Items) }

func (s StaticSource) ItemCount(section int) int {
	if section < 0 || section >= len(s.Items) {
		return 0
	}
	return s.Items[section]
}

func (s StaticSource) ViewportWidth() float64 { return s.Width }

// IndexPath addresses one item.
type IndexPath struct {
	Section int `json:"section" bson:"section"`
	Item    int `json:"item" bson:"item"`
}

// Path is shorthand for an IndexPath literal.
func Path(section, item int) IndexPath { return IndexPath{Section: section, Item: item} }

func (p IndexPath) String() string { return fmt.Sprintf("%d.%d", p.Section, p.Item) }

// Kind identifies what a frame belongs to.
type Kind int

const (
	KindCell Kind = iota
	KindHeader
	KindFooter
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindFooter:
		return "footer"
	default:
		return "cell"
	}
}

// ParseKind converts "cell", "header" or "footer" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cell":
		return KindCell, nil
	case "header":
		return KindHeader, nil
	case "footer":
		return KindFooter, nil
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Attributes is one positioned element. For headers and footers Path.Item
// is always zero.
type Attributes struct {
	Kind  Kind      `json:"kind"`
	Path  IndexPath `json:"path"`
	Frame geom.Rect `json:"frame"`
}

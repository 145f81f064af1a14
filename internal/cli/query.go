package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/mosaic/pkg/errors"
	"github.com/matzehuels/mosaic/pkg/geom"
	"github.com/matzehuels/mosaic/pkg/layout"
)

// queryCommand creates the query command.
func (c *CLI) queryCommand() *cobra.Command {
	var (
		flags   layoutFlags
		rectStr string
		itemStr string
		section int
	)

	cmd := &cobra.Command{
		Use:   "query [scene]",
		Short: "Look up frames in a scene's layout",
		Long: `Look up frames in a scene's layout.

  --rect x,y,w,h   every header, cell and footer intersecting the rectangle
  --item s.i       the frame of item i in section s
  --section n      the container, header and footer frames of section n`,
		Example: `  mosaic query photos.toml --rect 0,0,375,600
  mosaic query photos.toml --item 1.4
  mosaic query photos.toml --section 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasSection := cmd.Flags().Changed("section")
			if rectStr == "" && itemStr == "" && !hasSection {
				return errs.New(errs.ErrCodeInvalidInput, "query needs --rect, --item or --section")
			}
			opts, err := flags.options(args[0])
			if err != nil {
				return err
			}
			if err := opts.ValidateForLayout(); err != nil {
				return err
			}
			res, err := opts.EffectiveScene().Builder(layout.WithLogger(c.Logger)).Prepare()
			if err != nil {
				return fmt.Errorf("compute layout: %w", err)
			}

			size := res.ContentSize()
			printKeyValue("Content", fmt.Sprintf("%gx%g", size.Width, size.Height))

			if rectStr != "" {
				rect, err := parseRect(rectStr)
				if err != nil {
					return err
				}
				attrs := res.FramesIntersecting(rect)
				printNewline()
				printInfo("%d element(s) intersect %s", len(attrs), rect)
				if len(attrs) > 0 {
					fmt.Println(attributesTable(attrs))
				}
			}
			if itemStr != "" {
				path, err := parseIndexPath(itemStr)
				if err != nil {
					return err
				}
				f, ok := res.FrameForItem(path)
				if !ok {
					return errs.New(errs.ErrCodeNotFound, "item %s not in layout", path)
				}
				printKeyValue("Item "+path.String(), f.String())
			}
			if hasSection {
				container, ok := res.ContainerFrame(section)
				if !ok {
					return errs.New(errs.ErrCodeNotFound, "section %d not in layout", section)
				}
				printKeyValue("Container", container.String())
				if h, ok := res.FrameForSupplementary(layout.KindHeader, section); ok {
					printKeyValue("Header", h.String())
				}
				if f, ok := res.FrameForSupplementary(layout.KindFooter, section); ok {
					printKeyValue("Footer", f.String())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rectStr, "rect", "", "query rectangle as x,y,w,h")
	cmd.Flags().StringVar(&itemStr, "item", "", "item index path as section.item")
	cmd.Flags().IntVar(&section, "section", 0, "section index")
	flags.register(cmd)
	return cmd
}

// parseRect parses "x,y,w,h".
func parseRect(s string) (geom.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Rect{}, errs.New(errs.ErrCodeInvalidInput, "rect %q: want x,y,w,h", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geom.Rect{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "rect %q", s)
		}
		v[i] = f
	}
	if v[2] < 0 || v[3] < 0 {
		return geom.Rect{}, errs.New(errs.ErrCodeInvalidInput, "rect %q: negative size", s)
	}
	return geom.NewRect(v[0], v[1], v[2], v[3]), nil
}

// parseIndexPath parses "section.item".
func parseIndexPath(s string) (layout.IndexPath, error) {
	sec, item, ok := strings.Cut(s, ".")
	if !ok {
		return layout.IndexPath{}, errs.New(errs.ErrCodeInvalidInput, "index path %q: want section.item", s)
	}
	si, err := strconv.Atoi(sec)
	if err != nil || si < 0 {
		return layout.IndexPath{}, errs.New(errs.ErrCodeInvalidInput, "index path %q: bad section", s)
	}
	ii, err := strconv.Atoi(item)
	if err != nil || ii < 0 {
		return layout.IndexPath{}, errs.New(errs.ErrCodeInvalidInput, "index path %q: bad item", s)
	}
	return layout.Path(si, ii), nil
}

func attributesTable(attrs []layout.Attributes) string {
	rows := make([][]string, len(attrs))
	for i, a := range attrs {
		path := a.Path.String()
		if a.Kind != layout.KindCell {
			path = strconv.Itoa(a.Path.Section)
		}
		rows[i] = []string{a.Kind.String(), path, a.Frame.String()}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Kind", "Path", "Frame").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		}).
		Render()
}

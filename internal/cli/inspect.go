package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/document"
	"github.com/matzehuels/mosaic/pkg/grid"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags   layoutFlags
		section int
	)

	cmd := &cobra.Command{
		Use:   "inspect [scene | layout.json]",
		Short: "Print grid diagrams and frame tables",
		Long: `Print grid diagrams and frame tables.

Each section's grid is drawn one row per line with every unit labelled by
the 1-based ordinal of the item covering it, followed by a table of cells.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(cmd.Context(), args[0], flags)
			if err != nil {
				return err
			}
			only := -1
			if cmd.Flags().Changed("section") {
				only = section
				if section < 0 || section >= len(doc.Sections) {
					return fmt.Errorf("section %d out of range [0, %d)", section, len(doc.Sections))
				}
			}
			printKeyValue("Grid width", strconv.Itoa(doc.GridWidth))
			printKeyValue("Content", fmt.Sprintf("%gx%g", doc.Width, doc.Height))
			for _, sec := range doc.Sections {
				if only >= 0 && sec.Index != only {
					continue
				}
				out, err := inspectSection(sec, doc.GridWidth)
				if err != nil {
					return err
				}
				printNewline()
				fmt.Print(out)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&section, "section", 0, "only inspect this section")
	flags.register(cmd)
	return cmd
}

// loadDocument reads a layout document, or lays out a scene when input is
// not a *.layout.json file.
func (c *CLI) loadDocument(ctx context.Context, input string, flags layoutFlags) (document.Layout, error) {
	if strings.HasSuffix(input, ".layout.json") {
		return document.ReadFile(input)
	}
	opts, err := flags.options(input)
	if err != nil {
		return document.Layout{}, err
	}
	opts.Logger = c.Logger
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return document.Layout{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	return runner.Layout(ctx, opts)
}

// gridSection rebuilds the packed grid of a serialized section.
func gridSection(sec document.Section, gridWidth int) (*grid.Section, error) {
	g := &grid.Section{
		Items: make([]grid.CellItem, len(sec.Cells)),
		Width: gridWidth,
		Rects: make([]grid.Rect, len(sec.Cells)),
	}
	for i, cell := range sec.Cells {
		size, err := grid.ParseTileSize(cell.Size)
		if err != nil {
			return nil, fmt.Errorf("section %d cell %d: %w", sec.Index, i, err)
		}
		g.Items[i] = grid.Items(size)[0]
		g.Rects[i] = cell.Grid
	}
	return g, nil
}

func inspectSection(sec document.Section, gridWidth int) (string, error) {
	g, err := gridSection(sec, gridWidth)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Section %d", sec.Index)))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d items, %d rows, %s", len(sec.Cells), sec.Rows, sec.Frame)))
	b.WriteString("\n")
	if sec.Header != nil {
		b.WriteString(StyleDim.Render("header " + sec.Header.String()))
		b.WriteString("\n")
	}
	b.WriteString(g.Diagram())
	if sec.Footer != nil {
		b.WriteString(StyleDim.Render("footer " + sec.Footer.String()))
		b.WriteString("\n")
	}
	if len(sec.Cells) > 0 {
		b.WriteString(cellTable(sec.Cells, -1))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// cellTable renders cells as a table, highlighting the row at cursor.
func cellTable(cells []document.Cell, cursor int) string {
	rows := make([][]string, len(cells))
	for i, c := range cells {
		rows[i] = []string{strconv.Itoa(c.Item + 1), c.Size, c.Grid.String(), c.Frame.String()}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "Size", "Grid", "Frame").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			base := StyleValue
			if col == 1 && row < len(cells) {
				if s, ok := tileStyles[cells[row].Size]; ok {
					base = s
				}
			}
			if row == cursor {
				return base.Bold(true).Underline(true)
			}
			return base
		}).
		Render()
}

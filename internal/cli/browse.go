package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mosaic/pkg/document"
)

var browseHelpStyle = lipgloss.NewStyle().Foreground(colorDim)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "browse [scene | layout.json]",
		Short: "Explore a layout interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(cmd.Context(), args[0], flags)
			if err != nil {
				return err
			}
			if len(doc.Sections) == 0 {
				printInfo("Layout has no sections")
				return nil
			}
			_, err = tea.NewProgram(newBrowseModel(doc), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// browseModel is the bubbletea model for walking a layout's cells.
type browseModel struct {
	doc     document.Layout
	section int
	cursor  int
	height  int
	offset  int
}

func newBrowseModel(doc document.Layout) browseModel {
	return browseModel{doc: doc, height: 10}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cells := len(m.doc.Sections[m.section].Cells)
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < cells-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "left", "h", "shift+tab":
			if m.section > 0 {
				m.section--
				m.cursor, m.offset = 0, 0
			}
		case "right", "l", "tab":
			if m.section < len(m.doc.Sections)-1 {
				m.section++
				m.cursor, m.offset = 0, 0
			}
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height/2-6, 3)
	}
	return m, nil
}

func (m browseModel) View() string {
	sec := m.doc.Sections[m.section]

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("Section %d/%d", m.section+1, len(m.doc.Sections))))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s", sec.Frame)))
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("↑/↓ cell  ←/→ section  q quit"))
	b.WriteString("\n\n")

	if g, err := gridSection(sec, m.doc.GridWidth); err == nil {
		b.WriteString(g.Diagram())
		b.WriteString("\n")
	}

	if len(sec.Cells) == 0 {
		b.WriteString(StyleDim.Render("  (no items)"))
		return b.String()
	}
	end := min(m.offset+m.height, len(sec.Cells))
	b.WriteString(cellTable(sec.Cells[m.offset:end], m.cursor-m.offset))
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(sec.Cells))))
	return b.String()
}

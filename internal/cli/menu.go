package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/papernet/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// Menu choices.
const (
	choiceEdit   = "edit"
	choiceExport = "export"
	choiceScope  = "scope"
	choiceForest = "forest"
	choiceQuit   = "quit"
)

type menuItem struct {
	choice string
	label  string
}

var menuItems = []menuItem{
	{choiceEdit, "Design the net"},
	{choiceExport, "Create the printable images"},
	{choiceScope, "Render the curved-space view"},
	{choiceForest, "Draw the glue forest"},
	{choiceQuit, "Quit"},
}

// =============================================================================
// MenuModel - Main menu
// =============================================================================

// MenuModel is the bubbletea model shown when papernet runs without a
// subcommand. Choice is empty until the user picks an entry.
type MenuModel struct {
	Layout string
	Cursor int
	Choice string
}

// NewMenuModel creates a menu for the given layout file.
func NewMenuModel(layout string) MenuModel {
	return MenuModel{Layout: layout}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := key.String(); s {
	case "q", "ctrl+c", "esc":
		m.Choice = choiceQuit
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(menuItems)-1 {
			m.Cursor++
		}
	case "enter":
		m.Choice = menuItems[m.Cursor].choice
		return m, tea.Quit
	default:
		// Digits pick an entry directly.
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(menuItems) {
			m.Cursor = int(s[0] - '1')
			m.Choice = menuItems[m.Cursor].choice
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString(" ")
	b.WriteString(listDimStyle.Render(m.Layout))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("%d  %s", i+1, item.label)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// runMenu shows the main menu and runs the chosen command with the
// configured defaults.
func (c *CLI) runMenu(cmd *cobra.Command) error {
	path := c.Config.Files.Layout
	final, err := tea.NewProgram(NewMenuModel(path), tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return nil
	}

	switch m.Choice {
	case choiceEdit:
		return c.runEdit(cmd, path, editOptions{zoom: c.Config.Editor.Zoom, tps: c.Config.Editor.TPS})
	case choiceExport:
		opts, noCache := c.exportOptions(cmd, exportFlags{})
		return c.runExport(cmd, path, opts, noCache)
	case choiceScope:
		return c.runScope(cmd, path, scopeFlags{format: c.Config.Export.Format})
	case choiceForest:
		return c.runForest(cmd, path, forestFlags{format: pipeline.ForestSVG})
	}
	return nil
}

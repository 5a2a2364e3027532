package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const pageWidth = 52

// Page is the base screen: heading, description, and the button that opens
// the dialog.
type Page struct {
	Heading     string
	Description string
	ButtonLabel string
	Width       int
	Hovered     bool
	keys        *KeyMap
	help        help.Model
}

// Ensure Page implements View.
var _ View = (*Page)(nil)

// NewPage creates the page with its standard copy.
func NewPage(keys *KeyMap) *Page {
	return &Page{
		Heading:     "Interactive Modal",
		Description: "Click the button below to trigger a beautifully crafted modal dialog.",
		ButtonLabel: "Open Modal",
		Width:       pageWidth,
		keys:        keys,
		help:        help.New(),
	}
}

// Init implements View.
func (p *Page) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (p *Page) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, p.keys.Open) {
		return p, func() tea.Msg { return OpenModalMsg{Trigger: TriggerOpenButton} }
	}
	return p, nil
}

// View implements View.
func (p *Page) View() string {
	s, _ := p.Render()
	return s
}

// Render draws the page block and returns the open button's region
// relative to the block's top-left cell.
func (p *Page) Render() (string, []Region) {
	w := p.Width
	center := lipgloss.NewStyle().Width(w).Align(lipgloss.Center)

	var rows []string
	rows = appendBlock(rows, Styles.Heading.Inherit(center).Render(p.Heading))
	rows = append(rows, blankRow(w))
	rows = appendBlock(rows, Styles.Description.Inherit(center).Render(p.Description))
	rows = append(rows, blankRow(w), blankRow(w))

	style := Styles.Trigger
	if p.Hovered {
		style = Styles.TriggerActive
	}
	button := style.Render(p.ButtonLabel)
	bw, bh := lipgloss.Size(button)
	left := max(0, (w-bw)/2)
	open := Region{ID: RegionOpen, Rect: Rect{X: left, Y: len(rows), W: bw, H: bh}}
	for _, line := range strings.Split(button, "\n") {
		rows = append(rows, padRow(line, left, w))
	}

	rows = append(rows, blankRow(w))
	p.help.Width = w
	rows = appendBlock(rows, Styles.Hint.Inherit(center).Render(p.help.View(p.keys.PageHelp())))

	return strings.Join(rows, "\n"), []Region{open}
}

// appendBlock appends each line of a rendered block as its own row.
func appendBlock(rows []string, block string) []string {
	return append(rows, strings.Split(block, "\n")...)
}

func blankRow(w int) string {
	return strings.Repeat(" ", w)
}

// padRow places line at column left inside a row of width w.
func padRow(line string, left, w int) string {
	right := max(0, w-left-ansi.StringWidth(line))
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", right)
}

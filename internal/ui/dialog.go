package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	dialogWidth   = 48 // inner width, excluding the border
	dialogPadding = 3  // side gutter around text and buttons
	narrowPadding = 1  // gutter once the dialog is narrower than narrowWidth
	narrowWidth   = 30
	headerRows    = 4
)

// Dialog is the "Important Update" card. Every button on it closes the modal;
// they differ only in the Trigger they report.
type Dialog struct {
	Title          string
	Body           string
	PrimaryLabel   string
	SecondaryLabel string
	Width          int
	Hover          string // region ID under the pointer, if any
	Focus          *FocusManager
	keys           *KeyMap
	help           help.Model
}

// Ensure Dialog implements View.
var _ View = (*Dialog)(nil)

// NewDialog creates the dialog with primary focused.
func NewDialog(keys *KeyMap) *Dialog {
	return &Dialog{
		Title: "Important Update",
		Body: "Your workspace has been successfully synchronized with the cloud. " +
			"All your changes are now safe and accessible from any device.",
		PrimaryLabel:   "✔ Got it, thanks!",
		SecondaryLabel: "Remind me later",
		Width:          dialogWidth,
		Focus:          NewFocusManager(RegionPrimary, RegionSecondary, RegionClose),
		keys:           keys,
		help:           help.New(),
	}
}

// Init implements View.
func (d *Dialog) Init() tea.Cmd {
	return nil
}

// Update implements View. Esc is not handled here; the app's KeyListener owns it.
func (d *Dialog) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch {
	case key.Matches(km, d.keys.Next):
		d.Focus.Next()
	case key.Matches(km, d.keys.Prev):
		d.Focus.Prev()
	case key.Matches(km, d.keys.Activate):
		trigger := triggerForRegion(d.Focus.Current)
		return d, func() tea.Msg { return CloseModalMsg{Trigger: trigger} }
	}
	return d, nil
}

// View implements View.
func (d *Dialog) View() string {
	s, _ := d.Render()
	return s
}

// Render draws the bordered dialog and returns its button regions relative
// to the box's top-left cell.
func (d *Dialog) Render() (string, []Region) {
	w := d.Width
	pad := dialogPadding
	if w < narrowWidth {
		pad = narrowPadding
	}
	band := Styles.Header
	var rows []string
	var regions []Region

	// Header band: close button top-right, badge centred.
	closeBtn := d.buttonStyle(RegionClose).Render("✕")
	cw := lipgloss.Width(closeBtn)
	cx := max(0, w-cw-1)
	regions = append(regions, Region{ID: RegionClose, Rect: Rect{X: cx, Y: len(rows), W: cw, H: 1}})
	rows = append(rows, band.Render(blankRow(cx))+closeBtn+band.Render(blankRow(max(0, w-cx-cw))))
	rows = append(rows, band.Render(blankRow(w)))
	badge := Styles.Badge.Render("i")
	bw := lipgloss.Width(badge)
	bx := max(0, (w-bw)/2)
	rows = append(rows, band.Render(blankRow(bx))+badge+band.Render(blankRow(max(0, w-bx-bw))))
	for len(rows) < headerRows {
		rows = append(rows, band.Render(blankRow(w)))
	}

	// Content.
	text := lipgloss.NewStyle().Width(w).Padding(0, pad).Align(lipgloss.Center)
	rows = append(rows, blankRow(w))
	rows = appendBlock(rows, Styles.Title.Inherit(text).Padding(0, pad).Render(d.Title))
	rows = append(rows, blankRow(w))
	rows = appendBlock(rows, Styles.Body.Inherit(text).Padding(0, pad).Render(d.Body))
	rows = append(rows, blankRow(w))

	// Full-width action buttons.
	buttonWidth := max(1, w-2*pad)
	for i, id := range []string{RegionPrimary, RegionSecondary} {
		if i > 0 {
			rows = append(rows, blankRow(w))
		}
		label := d.PrimaryLabel
		if id == RegionSecondary {
			label = d.SecondaryLabel
		}
		style := d.buttonStyle(id)
		// One row per button; a wrapped label would fall outside its region.
		label = ansi.Truncate(label, max(1, buttonWidth-style.GetHorizontalFrameSize()), "…")
		btn := style.Width(buttonWidth).Align(lipgloss.Center).Render(label)
		regions = append(regions, Region{ID: id, Rect: Rect{X: pad, Y: len(rows), W: buttonWidth, H: 1}})
		rows = append(rows, padRow(btn, pad, w))
	}

	rows = append(rows, blankRow(w))
	d.help.Width = buttonWidth
	rows = appendBlock(rows, Styles.Hint.Inherit(text).Padding(0, pad).Render(d.help.View(d.keys.DialogHelp())))

	box := Styles.Dialog.Render(strings.Join(rows, "\n"))
	// Shift past the top and left border.
	for i := range regions {
		regions[i].Rect = regions[i].Rect.Offset(1, 1)
	}
	return box, regions
}

func (d *Dialog) buttonStyle(id string) lipgloss.Style {
	active := d.Hover == id || d.Focus.Is(id)
	switch id {
	case RegionClose:
		if active {
			return Styles.CloseButtonActive
		}
		return Styles.CloseButton
	case RegionPrimary:
		if active {
			return Styles.PrimaryActive
		}
		return Styles.Primary
	default:
		if active {
			return Styles.SecondaryActive
		}
		return Styles.Secondary
	}
}

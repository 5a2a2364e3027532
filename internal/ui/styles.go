package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors (ANSI 256). Roughly the zinc scale of the original design.
const (
	ColorInk       = "234" // Near-black: header band, primary button
	ColorInkHover  = "238" // Lifted ink for hovered/focused dark buttons
	ColorPaper     = "255" // White: badge, text on ink
	ColorText      = "252" // Normal text
	ColorMuted     = "244" // Description and secondary text
	ColorBorder    = "240" // Dialog border
	ColorAccent    = "86"  // Heading
	ColorBackdrop  = "235" // Backdrop fill when fully dimmed
	ColorDimText   = "239" // Page text under the backdrop
	ColorFaintText = "245" // Page text while the backdrop fades
)

// Styles contains shared style definitions for the page and the dialog.
var Styles = struct {
	// Page
	Heading       lipgloss.Style
	Description   lipgloss.Style
	Trigger       lipgloss.Style // "Open Modal"
	TriggerActive lipgloss.Style // hovered/focused

	// Dialog
	Dialog            lipgloss.Style // outer box
	Header            lipgloss.Style // dark band behind close button and badge
	Badge             lipgloss.Style
	CloseButton       lipgloss.Style
	CloseButtonActive lipgloss.Style
	Title             lipgloss.Style
	Body              lipgloss.Style
	Primary           lipgloss.Style
	PrimaryActive     lipgloss.Style
	Secondary         lipgloss.Style
	SecondaryActive   lipgloss.Style

	// Shared
	Hint          lipgloss.Style
	Backdrop      lipgloss.Style
	BackdropFaint lipgloss.Style
}{
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Description: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Trigger: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPaper)).
		Background(lipgloss.Color(ColorInk)).
		Padding(1, 4),
	TriggerActive: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorPaper)).
		Background(lipgloss.Color(ColorInkHover)).
		Padding(1, 4),

	Dialog: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)),
	Header: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorInk)),
	Badge: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInk)).
		Background(lipgloss.Color(ColorPaper)).
		Padding(0, 2),
	CloseButton: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPaper)).
		Background(lipgloss.Color(ColorInkHover)).
		Padding(0, 1),
	CloseButtonActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInk)).
		Background(lipgloss.Color(ColorPaper)).
		Padding(0, 1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPaper)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Primary: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPaper)).
		Background(lipgloss.Color(ColorInk)),
	PrimaryActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPaper)).
		Background(lipgloss.Color(ColorInkHover)),
	Secondary: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	SecondaryActive: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorText)),

	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Backdrop: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDimText)).
		Background(lipgloss.Color(ColorBackdrop)),
	BackdropFaint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorFaintText)),
}

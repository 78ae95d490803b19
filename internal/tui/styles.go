package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wctsmart/closingportal/internal/config"
)

// Status colors shared by every brand.
const (
	successColor = "#10B981" // Green
	warningColor = "#F59E0B" // Amber
	errorColor   = "#EF4444" // Red
	dimColor     = "#6B7280" // Gray
)

// Style variables that do not depend on the brand.
var (
	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders success messages in green.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(successColor))

	// ErrorStyle renders error messages in red.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorColor))

	// WarningStyle renders warning messages in amber.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(warningColor))

	// BoldStyle renders emphasised body text.
	BoldStyle = lipgloss.NewStyle().Bold(true)
)

// Milestone and document status icons (pre-rendered strings).
var (
	IconDone     = SuccessStyle.Render("✓")
	IconCurrent  = WarningStyle.Render("▸")
	IconPending  = DimStyle.Render("○")
	IconAttn     = ErrorStyle.Render("!")
	IconCheckOn  = SuccessStyle.Render("[x]")
	IconCheckOff = DimStyle.Render("[ ]")
)

// Styles are the brand-dependent styles. Build them once per program from
// the configured brand.
type Styles struct {
	Brand config.BrandConfig

	Box         lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Badge       lipgloss.Style
	Selected    lipgloss.Style
	Expectation lipgloss.Style
	Sidebar     lipgloss.Style
	Logo        lipgloss.Style
	Primary     lipgloss.Style
	Secondary   lipgloss.Style
	Panel       lipgloss.Style
	Urgent      lipgloss.Style
	StatusBar   lipgloss.Style
}

// NewStyles derives the style set from brand.
func NewStyles(brand config.BrandConfig) Styles {
	primary := lipgloss.Color(brand.PrimaryColor)
	accent := lipgloss.Color(brand.AccentColor)
	light := lipgloss.Color(brand.LightBlue)
	gray := lipgloss.Color(brand.GrayBlue)

	return Styles{
		Brand: brand,

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(gray),

		Badge: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#111827")).
			Bold(true).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Expectation: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(primary).
			Background(light).
			Foreground(lipgloss.Color("#111827")).
			Padding(0, 1).
			MarginTop(1),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(gray).
			Padding(0, 2, 0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			Underline(true),

		Primary: lipgloss.NewStyle().
			Background(primary).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2),

		Secondary: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(accent).
			Foreground(primary).
			Padding(0, 1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(gray).
			Padding(0, 1),

		Urgent: lipgloss.NewStyle().
			Background(lipgloss.Color(errorColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1),
	}
}

// Button renders a labelled control. Primary buttons use the brand color.
func (s Styles) Button(label string, primary bool) string {
	if primary {
		return s.Primary.Render(label)
	}
	return s.Secondary.Render(label)
}

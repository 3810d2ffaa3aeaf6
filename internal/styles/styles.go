// Package styles defines the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#F59E0B") // Amber

	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSecondary = lipgloss.Color("#1F2937")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")
)

// Shared styles
var (
	Title = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	Selected = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(BgSecondary).
			Bold(true)

	Tag = lipgloss.NewStyle().
		Foreground(Accent)

	TagSelected = lipgloss.NewStyle().
			Foreground(TextPrimary).
			Background(Primary).
			Bold(true)

	SearchPrompt = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	ToastSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(Success).
			Padding(0, 1)

	ToastError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Error).
			Padding(0, 1)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderActive)

	InactivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderNormal)

	FooterHint = lipgloss.NewStyle().
			Foreground(TextSecondary)
)

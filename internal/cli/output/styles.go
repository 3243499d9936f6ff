package output

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#A58AFF"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1E8E3E", Dark: "#5FD068"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#B06000", Dark: "#F5B14C"}
	colorError   = lipgloss.AdaptiveColor{Light: "#C5221F", Dark: "#FF6B6B"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#1967D2", Dark: "#6CB4FF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
)

// Styles holds the text-mode styles.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	StatusSuccess  lipgloss.Style
	StatusRejected lipgloss.Style
	StatusFailed   lipgloss.Style
	StatusRunning  lipgloss.Style
}

// NewStyles builds styles bound to r. When colored is false every style
// renders its input unchanged.
func NewStyles(r *lipgloss.Renderer, colored bool) *Styles {
	if !colored {
		plain := r.NewStyle()
		return &Styles{
			Header1: plain, Header2: plain, Bold: plain, Muted: plain, Path: plain,
			Success: plain, Warning: plain, Error: plain, Info: plain,
			StatusSuccess:  plain.SetString("✓"),
			StatusRejected: plain.SetString("✗"),
			StatusFailed:   plain.SetString("!"),
			StatusRunning:  plain.SetString("…"),
		}
	}

	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(colorPrimary).Underline(true),
		Header2: r.NewStyle().Bold(true).Foreground(colorPrimary),
		Bold:    r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(colorMuted),
		Path:    r.NewStyle().Foreground(colorInfo),
		Success: r.NewStyle().Foreground(colorSuccess).Bold(true),
		Warning: r.NewStyle().Foreground(colorWarning),
		Error:   r.NewStyle().Foreground(colorError).Bold(true),
		Info:    r.NewStyle().Foreground(colorInfo),

		StatusSuccess:  r.NewStyle().Foreground(colorSuccess).SetString("✓"),
		StatusRejected: r.NewStyle().Foreground(colorWarning).SetString("✗"),
		StatusFailed:   r.NewStyle().Foreground(colorError).SetString("!"),
		StatusRunning:  r.NewStyle().Foreground(colorMuted).SetString("…"),
	}
}

// StatusIcon returns the rendered marker for a status name.
func (s *Styles) StatusIcon(status string) string {
	switch status {
	case "success", "completed":
		return s.StatusSuccess.String()
	case "rejected":
		return s.StatusRejected.String()
	case "failed":
		return s.StatusFailed.String()
	default:
		return s.StatusRunning.String()
	}
}

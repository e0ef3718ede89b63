package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Box drawing characters
const (
	TopLeft     = "╭"
	TopRight    = "╮"
	BottomLeft  = "╰"
	BottomRight = "╯"
	Horizontal  = "─"
	Vertical    = "│"
	LeftT       = "├"
	RightT      = "┤"
	TopT        = "┬"
	BottomT     = "┴"
	Cross       = "┼"
)

// Color palette
const (
	ColorBorder  = "240"
	ColorHeader  = "252"
	ColorID      = "214"
	ColorName    = "81"
	ColorValue   = "252"
	ColorOnline  = "82"
	ColorOffline = "245"
	ColorPending = "214"
	ColorFailed  = "196"
	ColorMuted   = "240"
	ColorHint    = "245"
)

// Shared styles
var (
	BorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	IDStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorID))
	NameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	ValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorValue))
	OnlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOnline))
	OfflineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOffline))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPending))
	FailedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFailed))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	HintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHint))
)

// stateIndicator maps a resource state to its marker and style.
// Transfer servers report ONLINE/OFFLINE/STARTING/STOPPING/*_FAILED,
// AgentCore sessions READY/TERMINATED.
func stateIndicator(state string) (string, lipgloss.Style) {
	s := strings.ToUpper(state)
	switch {
	case s == "ONLINE" || s == "READY" || s == "ACTIVE" || s == "ENABLED":
		return "●", OnlineStyle
	case s == "STARTING" || s == "STOPPING" || s == "PENDING" || s == "CREATING" || s == "DELETING":
		return "◐", PendingStyle
	case strings.HasSuffix(s, "FAILED"):
		return "✗", FailedStyle
	default:
		return "○", OfflineStyle
	}
}

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

func formatOptional(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

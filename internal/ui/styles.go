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
	ColorCIDR    = "252"
	ColorAZ      = "252"
	ColorPublic  = "82"
	ColorPrivate = "141"
	ColorPending = "214"
	ColorMuted   = "240"
	ColorError   = "203"
)

// Shared styles
var (
	BorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	IDStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorID))
	NameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorName))
	CIDRStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorCIDR))
	AZStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAZ))
	PublicStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPublic))
	PrivateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrivate))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPending))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
)

// padRight pads a string to the specified display width using runewidth
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return runewidth.Truncate(s, width, "...")
	}
	return s + strings.Repeat(" ", width-sw)
}

// tierStyle picks the color for a public or private resource
func tierStyle(public bool) lipgloss.Style {
	if public {
		return PublicStyle
	}
	return PrivateStyle
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

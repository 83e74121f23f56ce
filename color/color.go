// Package color defines the terminal color vocabulary shared by the
// plain-terminal surfaces: config listings, env output, banners.
//
// The TUI carries its own truecolor palette in the style package; everything
// rendered outside the TUI sticks to indexed ANSI colors so output respects
// the user's terminal theme.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps a raw terminal color value, an ANSI index or a hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Base ANSI palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity variants, used for emphasis.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
	HiBlack  = New("16")
)

// Package style provides the text helpers shared by rig's console surfaces:
// lipgloss color styles for status lines, rune-width-aware centering for
// section rules, and title casing for headings.
//
// Styling is process-global and can be switched off for pipes, NO_COLOR, or
// --no-color; disabled styles pass text through unchanged so transcripts and
// tests see plain strings.
package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true) // Light green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))            // Orange
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))             // Bright blue
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))            // Dark gray

	enabled = true
)

// titler is package-shared; rig renders from a single flow, so no pool is
// needed around the non-concurrency-safe caser.
var titler = cases.Title(language.English)

// SetEnabled turns styled rendering on or off.
func SetEnabled(v bool) { enabled = v }

// Enabled reports whether styled rendering is active.
func Enabled() bool { return enabled }

func render(st lipgloss.Style, s string) string {
	if !enabled {
		return s
	}
	return st.Render(s)
}

// Success renders s as a success status line.
func Success(s string) string { return render(successStyle, s) }

// Fail renders s as a failure status line.
func Fail(s string) string { return render(errorStyle, s) }

// Warn renders s as a warning line.
func Warn(s string) string { return render(warnStyle, s) }

// Info renders s as an informational line.
func Info(s string) string { return render(infoStyle, s) }

// Hint renders s as a dimmed hint line.
func Hint(s string) string { return render(hintStyle, s) }

// Width returns the display width of s in terminal cells. Wide characters
// and emoji count by the cells they occupy, not by bytes or runes.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// TitleCase converts s to English title case.
func TitleCase(s string) string {
	return titler.String(s)
}

// CenterRule centers title inside a rule of fill characters that is width
// cells wide. A title at least as wide as the rule is returned unchanged.
// Odd leftover padding goes to the right.
func CenterRule(title string, width int, fill rune) string {
	w := Width(title)
	if w >= width {
		return title
	}
	pad := width - w
	left := pad / 2
	return strings.Repeat(string(fill), left) + title + strings.Repeat(string(fill), pad-left)
}

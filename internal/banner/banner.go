// SPDX-License-Identifier: MPL-2.0

// Package banner renders the startup banner shown before interactive use.
package banner

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("3")). // dim yellow
			Padding(0, 1)

	artStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // bright yellow

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))
)

// art is the caisson crate logo.
const art = `  ____________
 /___________/|
 |  _______  ||
 | |\     /| ||
 | | \   / | ||
 | |  \ /  | ||
 | |  / \  | ||
 | | /   \ | ||
 | |/_____\| ||
 |___________|/`

// Render returns the banner for the given application version as a single
// multi-line string, ready to print to a terminal.
func Render(version string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		artStyle.Render(art),
		"",
		textStyle.Render("caisson "+version),
		textStyle.Render("https://caisson.local"),
	)
	return borderStyle.Render(content)
}

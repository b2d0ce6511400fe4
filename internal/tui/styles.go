package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color definitions for the explorer
var (
	// Status message colors
	successColor = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // Green
	errorColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // Red
	infoColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")) // Blue

	// Text colors
	highlightColor = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")) // Black on yellow
	patternColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))                                 // Cyan
	indexColor     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))                                 // Yellow
	endNodeColor   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)                      // Bright magenta
	headingColor   = lipgloss.NewStyle().Bold(true)
	dimmedColor    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Dark grey
)

// formatStatus returns a colored status message based on the status kind
func formatStatus(message string, kind statusKind) string {
	switch kind {
	case statusSuccess:
		return successColor.Render(message)
	case statusError:
		return errorColor.Render(message)
	case statusInfo:
		return infoColor.Render(message)
	default:
		return message
	}
}

// formatMatch returns a colored "pattern : index" line
func formatMatch(pattern string, index int) string {
	return patternColor.Render(pattern) + " : " + indexColor.Render(fmt.Sprint(index))
}

// formatHint returns a dimmed key hint
func formatHint(text string) string {
	return dimmedColor.Render(text)
}

// Package ui renders terminal tables and runs the interactive menu.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const detailLimit = 10

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	warning   = lipgloss.AdaptiveColor{Light: "#F2A900", Dark: "#FFD24D"}
	failure   = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F6D"}

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(highlight).
			Padding(1, 2).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(special).
			Bold(true).
			MarginTop(1)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	headStyle    = cellStyle.Bold(true).Foreground(warning)
	mutedStyle   = lipgloss.NewStyle().Foreground(subtle)
	successStyle = lipgloss.NewStyle().Foreground(special)
	errorStyle   = lipgloss.NewStyle().Foreground(failure)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(highlight)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			return cellStyle
		})
}

func titled(title string, t *table.Table) string {
	return titleStyle.Render(title) + "\n" + t.Render() + "\n"
}

// Header renders a screen header.
func Header(text string) string {
	return headerStyle.Render(text)
}

// Step renders a step title.
func Step(text string) string {
	return stepStyle.Render(text)
}

// Message renders a status line.
func Message(text string, isError bool) string {
	if isError {
		return errorStyle.Render(text)
	}
	return successStyle.Render(text)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter collects operator input.
type Prompter interface {
	Select(title string, options []string) (string, error)
	Input(title, placeholder string) (string, error)
	Text(title string) (string, error)
	Confirm(title string) (bool, error)
}

// HuhPrompter asks through huh forms.
type HuhPrompter struct{}

// Select asks for one of options.
func (HuhPrompter) Select(title string, options []string) (string, error) {
	var choice string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huh.NewOptions(options...)...).
				Value(&choice),
		),
	).Run()
	return choice, err
}

// Input asks for a single line.
func (HuhPrompter) Input(title, placeholder string) (string, error) {
	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder(placeholder).
				Value(&value),
		),
	).Run()
	return value, err
}

// Text asks for several lines.
func (HuhPrompter) Text(title string) (string, error) {
	var value string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title(title).
				Description("Comma separated or one per line. An empty line ends the list.").
				Value(&value),
		),
	).Run()
	return value, err
}

// Confirm asks a yes/no question.
func (HuhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).Run()
	return ok, err
}

// CleanPath trims whitespace and surrounding quotes from a pasted path.
func CleanPath(path string) string {
	return strings.Trim(strings.TrimSpace(path), `"'`)
}

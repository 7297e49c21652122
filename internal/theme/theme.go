package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Tree      *lipgloss.Style
	Selection *lipgloss.Style
	Status    *lipgloss.Style
	Error     *lipgloss.Style
	Hint      *lipgloss.Style
	HintKey   *lipgloss.Style
	Command   *lipgloss.Style
	Cursor    *lipgloss.Style
}

var defaultStyles = Styles{
	Tree: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Selection: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	HintKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Command: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set with no decoration, for terminals without color
// or when highlighting is turned off.
func Plain() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Tree:      ptr(plain),
		Selection: ptr(plain.Reverse(true)),
		Status:    ptr(plain),
		Error:     ptr(plain),
		Hint:      ptr(plain),
		HintKey:   ptr(plain),
		Command:   ptr(plain),
		Cursor:    ptr(plain.Reverse(true)),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}

package main

import "github.com/charmbracelet/lipgloss"

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func primaryText(s string) string { return primaryStyle.Render(s) }
func errorText(s string) string   { return errorStyle.Render(s) }
func mutedText(s string) string   { return mutedStyle.Render(s) }

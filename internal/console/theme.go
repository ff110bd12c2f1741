// Package console implements the terminal user interface of the admin
// panel: sign-in, dashboard, bot management, and user management views
// driven by the session state machine and the route guard.
package console

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the console. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Semantic colors.
	StatusActive   lipgloss.Color
	StatusInactive lipgloss.Color
	RoleAdmin      lipgloss.Color
	ErrorText      lipgloss.Color
	SuccessText    lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	InputCursor      lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusActive:   lipgloss.Color("114"), // green
	StatusInactive: lipgloss.Color("245"), // gray
	RoleAdmin:      lipgloss.Color("141"), // light purple
	ErrorText:      lipgloss.Color("196"), // red
	SuccessText:    lipgloss.Color("114"), // green

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	InputCursor:      lipgloss.Color("220"), // amber
}

// Package ui holds the color themes used by the command-line output: raw
// ANSI codes for inline coloring and lipgloss styles for headers.
package ui

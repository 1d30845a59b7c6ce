// Package ui holds the terminal color themes shared by the CLI and TUI
// presentation layers.
package ui

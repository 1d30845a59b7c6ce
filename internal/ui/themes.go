package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for console output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	// Uses bright, vibrant colors for good contrast.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;141m", // Purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	// Uses darker colors for better readability.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;54m",  // Dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// PlainTheme disables all coloring. Used when output is not a
	// terminal (NO_COLOR, piped output).
	PlainTheme = Theme{Name: "plain"}
)

var (
	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// InitTheme selects the active theme. Color output is disabled entirely
// when the NO_COLOR convention is in effect.
func InitTheme(light bool) {
	themeMu.Lock()
	defer themeMu.Unlock()
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		currentTheme = PlainTheme
		return
	}
	if light {
		currentTheme = LightTheme
		return
	}
	currentTheme = DarkTheme
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// Color accessors for the active theme.

func ColorBlue() string      { return CurrentTheme().Primary }
func ColorGrey() string      { return CurrentTheme().Secondary }
func ColorGreen() string     { return CurrentTheme().Success }
func ColorYellow() string    { return CurrentTheme().Warning }
func ColorRed() string       { return CurrentTheme().Error }
func ColorCyan() string      { return CurrentTheme().Info }
func ColorBold() string      { return CurrentTheme().Bold }
func ColorUnderline() string { return CurrentTheme().Underline }
func ColorReset() string     { return CurrentTheme().Reset }

// TUITheme defines the lipgloss palette used by the dashboard.
type TUITheme struct {
	Bg      lipgloss.Color
	Text    lipgloss.Color
	Dim     lipgloss.Color
	Border  lipgloss.Color
	Accent  lipgloss.Color
	Info    lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// defaultTUITheme mirrors DarkTheme in lipgloss colors.
var defaultTUITheme = TUITheme{
	Bg:      lipgloss.Color("235"),
	Text:    lipgloss.Color("252"),
	Dim:     lipgloss.Color("245"),
	Border:  lipgloss.Color("240"),
	Accent:  lipgloss.Color("39"),
	Info:    lipgloss.Color("141"),
	Success: lipgloss.Color("82"),
	Warning: lipgloss.Color("220"),
	Error:   lipgloss.Color("196"),
}

// GetCurrentTUITheme returns the lipgloss palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	return defaultTUITheme
}

package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ANSI palette used for status lines, matching the original colorama bright set.
var (
	styleRed     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleGreen   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleYellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleBlue    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	styleMagenta = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	styleCyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleWhite   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
)

// Colorize renders text in the named color. Unknown color names render plain.
// When stdout is not a terminal, or the environment opts out of color
// (NO_COLOR, CLICOLOR=0), no styling is applied so piped output stays clean.
func Colorize(text, color string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return text
	}
	if termenv.EnvNoColor() {
		return text
	}
	switch color {
	case "red":
		return styleRed.Render(text)
	case "green":
		return styleGreen.Render(text)
	case "yellow":
		return styleYellow.Render(text)
	case "blue":
		return styleBlue.Render(text)
	case "magenta":
		return styleMagenta.Render(text)
	case "cyan":
		return styleCyan.Render(text)
	case "white":
		return styleWhite.Render(text)
	}
	return text
}

// Red renders text bright red
func Red(text string) string { return Colorize(text, "red") }

// Green renders text bright green
func Green(text string) string { return Colorize(text, "green") }

// Yellow renders text bright yellow
func Yellow(text string) string { return Colorize(text, "yellow") }

// Blue renders text bright blue
func Blue(text string) string { return Colorize(text, "blue") }

// Cyan renders text bright cyan
func Cyan(text string) string { return Colorize(text, "cyan") }

// Magenta renders text bright magenta
func Magenta(text string) string { return Colorize(text, "magenta") }

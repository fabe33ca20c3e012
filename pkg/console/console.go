// Package console renders lint findings and status messages for the
// terminal. Styling is applied only when stdout is a TTY so piped output
// stays machine-readable.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Finding is one positioned lint finding prepared for rendering.
type Finding struct {
	File    string
	Line    int // 1-based
	Column  int // 1-based
	Level   string // "error" or "warning"
	Message string
	// Context holds the source line the finding points at, when known.
	Context string
}

var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#50FA7B"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	contextLineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F8F8F2"))
)

func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// applyStyle conditionally applies styling based on TTY status.
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// ToRelativePath converts an absolute path to a path relative to the
// current working directory, falling back to the input when that fails.
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	relPath, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return relPath
}

// FormatFinding renders one finding in IDE-parseable form:
// file:line:column: level: message, followed by the source line and a
// caret when context is available.
func FormatFinding(f Finding) string {
	var output strings.Builder

	levelStyle := errorStyle
	if f.Level == "warning" {
		levelStyle = warningStyle
	}

	if f.File != "" {
		location := fmt.Sprintf("%s:%d:%d:", ToRelativePath(f.File), f.Line, f.Column)
		output.WriteString(applyStyle(filePathStyle, location))
		output.WriteString(" ")
	}
	output.WriteString(applyStyle(levelStyle, f.Level+":"))
	output.WriteString(" ")
	output.WriteString(f.Message)
	output.WriteString("\n")

	if f.Context != "" && f.Line > 0 {
		lineNum := fmt.Sprintf("%d", f.Line)
		output.WriteString(applyStyle(lineNumberStyle, lineNum))
		output.WriteString(" | ")
		output.WriteString(applyStyle(contextLineStyle, f.Context))
		output.WriteString("\n")
		if f.Column > 0 {
			output.WriteString(strings.Repeat(" ", len(lineNum)+3+f.Column-1))
			output.WriteString(applyStyle(levelStyle, "^"))
			output.WriteString("\n")
		}
	}

	return output.String()
}

// FormatSuccessMessage formats a success message with styling.
func FormatSuccessMessage(message string) string {
	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats a simple error message (for stderr output).
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// Summary aggregates one lint run for the closing table.
type Summary struct {
	Files    int
	Errors   int
	Warnings int
}

// FormatSummary renders the closing line of a lint run.
func FormatSummary(s Summary) string {
	text := fmt.Sprintf("%d file(s) checked: %d error(s), %d warning(s)", s.Files, s.Errors, s.Warnings)
	switch {
	case s.Errors > 0:
		return applyStyle(errorStyle, "✗ ") + text
	case s.Warnings > 0:
		return applyStyle(warningStyle, "⚠ ") + text
	default:
		return applyStyle(successStyle, "✓ ") + text
	}
}

// Table rendering styles.
var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#BD93F9"))

	tableCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F8F2"))

	tableSeparatorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#44475A"))
)

// RenderTable renders a simple aligned table with a header row.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var output strings.Builder
	output.WriteString(renderTableRow(headers, colWidths, tableHeaderStyle))
	output.WriteString("\n")

	separators := make([]string, len(headers))
	for i, width := range colWidths {
		separators[i] = strings.Repeat("-", width)
	}
	output.WriteString(renderTableRow(separators, colWidths, tableSeparatorStyle))
	output.WriteString("\n")

	for _, row := range rows {
		output.WriteString(renderTableRow(row, colWidths, tableCellStyle))
		output.WriteString("\n")
	}
	return output.String()
}

func renderTableRow(cells []string, colWidths []int, style lipgloss.Style) string {
	var row strings.Builder
	for i, cell := range cells {
		if i >= len(colWidths) {
			break
		}
		row.WriteString(applyStyle(style, fmt.Sprintf("%-*s", colWidths[i], cell)))
		if i < len(cells)-1 {
			row.WriteString(applyStyle(tableSeparatorStyle, " | "))
		}
	}
	return row.String()
}

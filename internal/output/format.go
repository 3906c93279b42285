// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todo/internal/service"
)

var statusColors = map[service.Status]lipgloss.Color{
	service.Todo:       lipgloss.Color("245"),
	service.InProgress: lipgloss.Color("33"),
	service.Done:       lipgloss.Color("42"),
}

// FormatTask formats a task line.
// Format: "{N}. {DESCRIPTION} [{STATUS}]\n"
// With color set, the status tag is coloured when w is a terminal.
func FormatTask(w io.Writer, num int, task service.Task, color bool) {
	desc := normalizeDescription(task.Description)
	tag := "[" + task.Status.String() + "]"
	if color {
		tag = lipgloss.NewRenderer(w).NewStyle().
			Foreground(statusColors[task.Status]).
			Render(tag)
	}
	fmt.Fprintf(w, "%d. %s %s\n", num, desc, tag)
}

// normalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}

package core

import "strings"

const (
	// NoTodosMessage is the report returned when there is nothing to list
	NoTodosMessage = "No TODOs found."
	reportHeader   = "TODOs:"
)

// FormatReport renders items as a bulleted list under a header, skipping blank items.
func FormatReport(items []string) string {
	lines := []string{reportHeader}

	for _, item := range items {
		item = trimSpace(item)
		if item == "" {
			continue
		}
		lines = append(lines, "- "+item)
	}

	if len(lines) == 1 {
		return NoTodosMessage
	}

	return strings.Join(lines, "\n")
}

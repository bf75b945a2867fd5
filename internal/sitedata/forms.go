package sitedata

import (
	"strings"

	"mohsin_travel/internal/adapters/apiclient"
)

// Form helpers for the admin textarea fields. Splitting and joining are
// inverse operations for any input that survives a split, so editing a field
// and saving it unchanged never mutates the stored value.

// SplitLines turns a newline-separated textarea value into a list, dropping
// blank lines and surrounding whitespace.
func SplitLines(s string) []string {
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// JoinLines is the inverse of SplitLines.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

// SplitParagraphs splits on blank lines, so a paragraph may span several
// adjacent lines in the textarea.
func SplitParagraphs(s string) []string {
	out := []string{}
	for _, block := range strings.Split(s, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// JoinParagraphs is the inverse of SplitParagraphs.
func JoinParagraphs(paragraphs []string) string {
	return strings.Join(paragraphs, "\n\n")
}

// ParseBusinessHours reads one "day|hours" entry per line. Lines without a
// separator keep the whole text as the day with empty hours.
func ParseBusinessHours(s string) []apiclient.BusinessHour {
	out := []apiclient.BusinessHour{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		day, hours, _ := strings.Cut(line, "|")
		out = append(out, apiclient.BusinessHour{
			Day:   strings.TrimSpace(day),
			Hours: strings.TrimSpace(hours),
		})
	}
	return out
}

// FormatBusinessHours is the inverse of ParseBusinessHours.
func FormatBusinessHours(hours []apiclient.BusinessHour) string {
	lines := make([]string, 0, len(hours))
	for _, h := range hours {
		lines = append(lines, h.Day+"|"+h.Hours)
	}
	return strings.Join(lines, "\n")
}

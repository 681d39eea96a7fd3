package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	descriptionMaxLines = 3
	descriptionMaxChars = 500
)

var taskItemRe = regexp.MustCompile(`- \[[ x]\]`)

// ExtractDescription returns up to three leading prose lines of a Markdown
// document, skipping blank lines and headings. Collection stops once the
// gathered text passes 500 characters. ok is false when no prose was found.
func ExtractDescription(content string) (desc string, ok bool) {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
		if utf8.RuneCountInString(strings.Join(lines, "\n")) > descriptionMaxChars {
			break
		}
	}

	if len(lines) == 0 {
		return "", false
	}
	if len(lines) > descriptionMaxLines {
		lines = lines[:descriptionMaxLines]
	}
	return strings.Join(lines, "\n"), true
}

// CountTaskItems counts "- [ ]" and "- [x]" checkboxes.
func CountTaskItems(content string) int {
	return len(taskItemRe.FindAllStringIndex(content, -1))
}

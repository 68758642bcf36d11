package model

import (
	"regexp"
	"strings"
)

// Labeler turns a field name into a display label.
type Labeler func(name string) string

// FieldName is the default labeler: the field's own name, unchanged.
func FieldName(name string) string {
	return name
}

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// HumanLabel converts a field name into a human-friendly label. It splits on
// underscores/dashes and camelCase boundaries.
func HumanLabel(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, titleCase(splitCamel(word)))
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

// DisplayLabel returns the explicit label of f when set, otherwise the
// labeler applied to the field name.
func DisplayLabel(f Field, labeler Labeler) string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	if labeler == nil {
		labeler = FieldName
	}
	return labeler(f.Name)
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	parts := strings.Fields(word)
	for i, part := range parts {
		lower := strings.ToLower(part)
		parts[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(parts, " ")
}

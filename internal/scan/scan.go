// Package scan locates identifier and reference values in raw document text.
package scan

import (
	"regexp"
	"strings"
)

// ReferenceLabel is the literal label preceding the document reference number.
// Matching is case-sensitive and includes the trailing colon.
const ReferenceLabel = "Številka:"

// A 13-digit run bounded by word boundaries. A run embedded in a longer
// unbroken digit sequence must not match any of its 13-digit substrings.
var identifierPattern = regexp.MustCompile(`\b\d{13}\b`)

// FindIdentifier returns the first 13-digit candidate in text, in document
// order. The second return value is false when no candidate exists; later
// candidates are never inspected.
func FindIdentifier(text string) (string, bool) {
	match := identifierPattern.FindString(text)
	if match == "" {
		return "", false
	}
	return match, true
}

// FindReference locates the value following the default reference label.
func FindReference(text string) (string, bool) {
	return FindLabeledValue(text, ReferenceLabel)
}

// FindLabeledValue extracts the value after the first occurrence of label,
// up to the next newline (or end of text), with surrounding whitespace
// trimmed. The trimmed value may be empty; that still counts as found.
// Deliberately a plain substring search, not a pattern match.
func FindLabeledValue(text, label string) (string, bool) {
	start := strings.Index(text, label)
	if start == -1 {
		return "", false
	}
	start += len(label)

	end := strings.IndexByte(text[start:], '\n')
	if end == -1 {
		end = len(text)
	} else {
		end += start
	}

	return strings.TrimSpace(text[start:end]), true
}

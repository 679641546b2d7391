package core

// parse.go splits delimited text into rows of raw string fields.
//
// The scanner is deliberately small: a quote toggles the in-quotes state and
// a comma outside quotes ends a field. There is no escape handling, so a
// doubled quote inside a quoted field simply toggles twice. Quote characters
// stay in the field; CleanCell strips them later.

import (
	"strings"
	"unicode/utf8"
)

const (
	delimiter = ','
	quote     = '"'
)

// utf8BOM is the byte order mark Excel prepends to UTF-8 exports.
const utf8BOM = "\uFEFF"

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(text string) string {
	return strings.TrimPrefix(text, utf8BOM)
}

// SanitizeText removes a leading BOM and replaces invalid UTF-8 sequences
// with '?'.
func SanitizeText(text string) string {
	text = StripBOM(text)
	if utf8.ValidString(text) {
		return text
	}
	return strings.ToValidUTF8(text, "?")
}

// ParseRows splits text into rows. Row 0 is the header line when present.
// Blank and whitespace-only lines are dropped, never returned as empty rows.
// ParseRows is pure and never fails; malformed quoting only shifts field
// boundaries, which the normalizer catches as a field-count mismatch.
func ParseRows(text string) [][]string {
	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, ParseLine(line))
	}

	return rows
}

// ParseLine splits a single line into fields.
func ParseLine(line string) []string {
	var (
		fields   []string
		field    strings.Builder
		inQuotes bool
	)

	for _, r := range line {
		switch {
		case r == quote:
			inQuotes = !inQuotes
			field.WriteRune(r)
		case r == delimiter && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}

	// Last field has no trailing delimiter
	return append(fields, field.String())
}

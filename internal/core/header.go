package core

import (
	"fmt"
	"regexp"
)

// namespaceHeader matches Namespace[FieldName]. Neither part may contain a
// bracket, so a stripped name never matches again.
var namespaceHeader = regexp.MustCompile(`^[^\[\]]*\[([^\[\]]+)\]$`)

// FieldName returns the effective field name for a raw column header.
// The result is a fixed point: FieldName(FieldName(x)) == FieldName(x).
func FieldName(raw string) string {
	h := cleanFully(raw)
	if m := namespaceHeader.FindStringSubmatch(h); m != nil {
		return cleanFully(m[1])
	}
	return h
}

// cleanFully applies CleanCell until the value stops changing, so inputs
// like `=="x"` or `="=x"` end up fully cleaned. CleanCell only removes
// characters, which bounds the loop.
func cleanFully(s string) string {
	for {
		c := CleanCell(s)
		if c == s {
			return c
		}
		s = c
	}
}

// HeaderMap is the effective field name of every raw column, index-aligned
// with the header row.
type HeaderMap struct {
	Names []string
	// Duplicates lists effective names produced by more than one column,
	// in order of first repetition.
	Duplicates []string
}

// Width is the raw header field count every data row must match.
func (h HeaderMap) Width() int {
	return len(h.Names)
}

// MapHeader builds the header map for a raw header row.
func MapHeader(header []string) HeaderMap {
	m := HeaderMap{Names: make([]string, len(header))}
	seen := make(map[string]int, len(header))

	for i, raw := range header {
		name := FieldName(raw)
		m.Names[i] = name
		seen[name]++
		if seen[name] == 2 {
			m.Duplicates = append(m.Duplicates, name)
		}
	}

	return m
}

// Check applies the duplicate policy.
func (h HeaderMap) Check(policy DuplicatePolicy) error {
	if policy == DuplicateReject && len(h.Duplicates) > 0 {
		return fmt.Errorf("%w: %v", ErrDuplicateHeader, h.Duplicates)
	}
	return nil
}

// Assemble maps field names to row values. Later columns overwrite earlier
// ones with the same name. The caller guarantees len(row) == h.Width().
func (h HeaderMap) Assemble(row []string) map[string]string {
	fields := make(map[string]string, len(row))
	for i, v := range row {
		fields[h.Names[i]] = v
	}
	return fields
}

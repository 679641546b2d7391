package core

import (
	"fmt"
	"os"
)

// LoadFile reads the source export as text.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInputUnavailable, err)
	}
	return string(data), nil
}

// Build runs the full text -> rows -> records pipeline over one snapshot
// of the export. It returns ErrNoRecords when nothing survives filtering,
// so callers never render an empty flyer.
func Build(text string, opts Options) (Catalog, error) {
	rows := ParseRows(SanitizeText(text))

	res, err := Normalize(rows, opts)
	if err != nil {
		return Catalog{}, err
	}

	if len(res.Records) == 0 {
		return Catalog{Skipped: res.Skipped, Columns: res.Header.Names},
			fmt.Errorf("%w: %d data rows, %d skipped", ErrNoRecords, len(rows)-1, res.Skipped.Total())
	}

	return Catalog{
		Records: res.Records,
		Summary: Summarize(res.Records),
		Skipped: res.Skipped,
		Columns: res.Header.Names,
	}, nil
}

// BuildFile loads path and builds its catalog.
func BuildFile(path string, opts Options) (Catalog, error) {
	text, err := LoadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	return Build(text, opts)
}

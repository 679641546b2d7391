package core

import (
	"errors"
	"sort"
)

// Row discard reasons. They never escape Normalize; they are counted in
// SkipStats.
var (
	ErrFieldCount       = errors.New("row field count does not match header")
	ErrOutOfStock       = errors.New("row has no stock")
	ErrBelowMinDiscount = errors.New("row discount below minimum")
)

// rowOutcome is the per-row result folded by Normalize.
type rowOutcome struct {
	record Record
	err    error
}

// Normalize converts parsed rows (row 0 is the header) into sorted records.
// It fails only on an empty input or a rejected duplicate header; every
// row-level problem is counted and skipped.
func Normalize(rows [][]string, opts Options) (Result, error) {
	if len(rows) == 0 {
		return Result{}, ErrEmptyInput
	}

	header := MapHeader(rows[0])
	if err := header.Check(opts.Duplicates); err != nil {
		return Result{}, err
	}

	res := Result{
		Records: make([]Record, 0, len(rows)-1),
		Header:  header,
	}

	for _, row := range rows[1:] {
		out := evalRow(header, row, opts)
		switch {
		case out.err == nil:
			res.Records = append(res.Records, out.record)
		case errors.Is(out.err, ErrFieldCount):
			res.Skipped.FieldCount++
		case errors.Is(out.err, ErrOutOfStock):
			res.Skipped.OutOfStock++
		case errors.Is(out.err, ErrBelowMinDiscount):
			res.Skipped.BelowDiscount++
		}
	}

	SortRecords(res.Records)
	return res, nil
}

// evalRow checks, coerces and classifies one data row.
func evalRow(header HeaderMap, row []string, opts Options) rowOutcome {
	if len(row) != header.Width() {
		return rowOutcome{err: ErrFieldCount}
	}

	rec := NewRecord(header.Assemble(row))

	if rec.StockQuantity <= 0 {
		return rowOutcome{err: ErrOutOfStock}
	}
	if opts.MinDiscount > 0 && rec.DiscountPercent < opts.MinDiscount {
		return rowOutcome{err: ErrBelowMinDiscount}
	}

	return rowOutcome{record: rec}
}

// NewRecord builds a record from an assembled field map. Missing fields
// read as empty strings and take their defaults.
func NewRecord(fields map[string]string) Record {
	rec := Record{
		Manufacturer:    textOr(fields[ColManufacturer], DefaultManufacturer),
		Model:           textOr(fields[ColModel], DefaultModel),
		ItemCode:        CleanCell(fields[ColItem]),
		LogoURL:         CleanCell(fields[ColLogoURL]),
		Size:            CleanCell(fields[ColSize]),
		TypeDescription: CleanCell(fields[ColTypeDescription]),
		IsWinterTire:    ParseBool(fields[ColWinter]),
		DiscountPercent: ParsePercent(fields[ColDiscount]),
		SalePrice:       ParseNumber(fields[ColSalePrice]),
		RegularPrice:    ParseNumber(fields[ColRegularPrice]),
		StockQuantity:   ParseInt(fields[ColQuantity]),
	}

	// Savings are always derived; a savings column in the export is ignored.
	rec.Savings = RoundHalfUp(rec.RegularPrice - rec.SalePrice)
	rec.Badge = BadgeTierFor(rec.DiscountPercent)
	rec.Stock = StockTierFor(rec.StockQuantity)

	return rec
}

func textOr(s, fallback string) string {
	if s = CleanCell(s); s == "" {
		return fallback
	}
	return s
}

// SortRecords orders records by discount, then savings, both descending.
// Equal records keep their input order.
func SortRecords(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].DiscountPercent != records[j].DiscountPercent {
			return records[i].DiscountPercent > records[j].DiscountPercent
		}
		return records[i].Savings > records[j].Savings
	})
}

// Package core turns a tire inventory CSV export into the normalized,
// classified record list that drives the flyer page.
//
// This package holds all domain logic and does no I/O beyond [LoadFile].
// The renderer, the build command and the preview server all consume the
// [Catalog] it produces.
//
// # Pipeline
//
// [Build] runs the whole transformation over a snapshot of input text:
//
//  1. [SanitizeText] drops the UTF-8 BOM and replaces invalid sequences
//  2. [ParseRows] splits the text into rows of raw fields
//  3. [Normalize] maps the header, coerces each row and filters it
//  4. [Summarize] computes the statistics block
//
// Every run is a full rebuild. Nothing is cached between calls and the
// returned slices are never shared with later calls.
//
// # Header Convention
//
// Exports wrap their column names in a namespace bracket, for example
// FlyerData[SalePrice]. [FieldName] strips the namespace so the normalizer
// sees SalePrice. Plain headers pass through unchanged.
//
// # Row Tolerance
//
// A bad row never fails the batch. Rows with the wrong field count, no
// stock, or (when configured) too small a discount are dropped and counted
// in [SkipStats]. Bad numerics coerce to zero and the row is kept.
//
// # Error Handling
//
// Fatal conditions are sentinel errors ([ErrInputUnavailable],
// [ErrEmptyInput], [ErrDuplicateHeader], [ErrNoRecords]). [MapError]
// converts them to user-facing messages with a support code:
//
//   - FILE001-FILE002: input file errors
//   - VAL001: header validation errors
//   - DATA001: empty result
//   - OUT001: output errors
package core

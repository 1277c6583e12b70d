// Package rbc converts RBC Direct Investing activity-statement rows into
// ledger transactions: a normalizer that types the raw text fields and a
// synthesizer that classifies each row's action into a posting pattern.
package rbc

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerimport-dev/ledgerimport/internal/statement"
)

const dateFormat = "2006-01-02"

// Rows expressed in thousandths of a unit flag it at the start of the
// description; DIST rows sometimes carry their action only in the
// description, as a standalone word.
var (
	thousandthsRe = regexp.MustCompile(`^1000THS`)
	distRe        = regexp.MustCompile(`\bDIST\b`)
)

// CanonicalRow is the typed, normalized form of one statement row.
type CanonicalRow struct {
	Date        time.Time
	Settlement  time.Time
	Action      string // always non-empty
	Symbol      string // empty for cash-only rows
	Description string
	Currency    string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
	Amount      decimal.Decimal
}

// Normalize types a raw row: parses dates, coerces numbers, rescales
// thousandths quantities, back-fills a zero amount from quantity*price, and
// resolves the action. The steps are ordered; each depends on the one
// before it.
func Normalize(raw statement.Row) (CanonicalRow, error) {
	row := CanonicalRow{
		Action:      raw.Action,
		Symbol:      raw.Symbol,
		Description: raw.Description,
		Currency:    raw.Currency,
	}

	var err error
	if row.Date, err = time.Parse(dateFormat, raw.Date); err != nil {
		return CanonicalRow{}, &DateParseError{Field: "trade", Value: raw.Date, Err: err}
	}
	if row.Settlement, err = time.Parse(dateFormat, raw.Settlement); err != nil {
		return CanonicalRow{}, &DateParseError{Field: "settlement", Value: raw.Settlement, Err: err}
	}

	if row.Quantity, err = parseDecimal(raw.Quantity); err != nil {
		return CanonicalRow{}, &NumberParseError{Field: "quantity", Value: raw.Quantity, Err: err}
	}
	if row.Price, err = parseDecimal(raw.Price); err != nil {
		return CanonicalRow{}, &NumberParseError{Field: "price", Value: raw.Price, Err: err}
	}
	if row.Amount, err = parseDecimal(raw.Amount); err != nil {
		return CanonicalRow{}, &NumberParseError{Field: "amount", Value: raw.Amount, Err: err}
	}

	// Quantities on 1000THS rows are stated in thousandths of a unit.
	if thousandthsRe.MatchString(row.Description) {
		row.Quantity = row.Quantity.Div(decimal.NewFromInt(1000))
	}

	// Some rows omit the redundant total; recover it.
	if row.Amount.IsZero() {
		row.Amount = row.Quantity.Mul(row.Price)
	}

	if row.Action == "" {
		if distRe.MatchString(row.Description) {
			row.Action = "DIST"
		}
	}
	if row.Action == "" {
		return CanonicalRow{}, &MalformedRowError{Description: row.Description}
	}

	return row, nil
}

// parseDecimal coerces a statement numeric field: empty means zero,
// grouping commas are stripped before parsing.
func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	return decimal.NewFromString(stripCommas(s))
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

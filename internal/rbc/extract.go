package rbc

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// The description field often mentions figures that never make it into the
// structured columns: a dollar amount (dividend rates, mostly) and a share
// count. Each extractor is independent and optional.
var (
	descAmountRe = regexp.MustCompile(`\$([0-9,]+\.[0-9][0-9])`)
	descSharesRe = regexp.MustCompile(`\b([0-9]+) SHS`)
)

// details holds the figures recovered from a row's free-text description.
type details struct {
	Amount    decimal.Decimal
	HasAmount bool
	Shares    decimal.Decimal
	HasShares bool
}

// extractDetails pulls the embedded dollar amount and share count out of a
// description, when present.
func extractDetails(description string) details {
	var d details
	if m := descAmountRe.FindStringSubmatch(description); m != nil {
		// The pattern only admits digits, commas and a two-digit
		// fraction, so parsing cannot fail.
		d.Amount, _ = decimal.NewFromString(stripCommas(m[1]))
		d.HasAmount = true
	}
	if m := descSharesRe.FindStringSubmatch(description); m != nil {
		d.Shares, _ = decimal.NewFromString(m[1])
		d.HasShares = true
	}
	return d
}

package rbc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerimport-dev/ledgerimport/internal/config"
	"github.com/ledgerimport-dev/ledgerimport/internal/ledger"
)

// The closed set of action codes on RBC activity statements. Each maps to a
// fixed posting archetype; anything else is fatal.
const (
	// Administrative rows with no economic effect.
	ActionAdjRR = "ADJ RR"
	ActionRtcRR = "RTC RR"
	ActionExhAB = "EXH AB"

	// Dividend reinvested into the position, at a rate the statement only
	// states in the description.
	ActionDivF6 = "DIV F6"

	// Regular trades; quantity sign encodes direction.
	ActionBuy  = "Buy"
	ActionSell = "Sell"

	// Fund moves with no cash leg on this statement.
	ActionSelFF = "SEL FF"
	ActionPurFF = "PUR FF"

	// Cash distribution.
	ActionDist = "DIST"
)

// narrationSep joins the narration fragments.
const narrationSep = " -- "

// Synthesize classifies a normalized row and emits a ledger transaction at
// loc. The mapping supplies the cash, positions and dividend accounts; a
// per-symbol sub-account is derived under positions. An action outside the
// recognized set returns an UnknownActionError.
func Synthesize(row CanonicalRow, accounts *config.Mapping, loc ledger.FileLocation) (ledger.Transaction, error) {
	// Figures mentioned only in the free-text description. The share
	// count is recovered alongside the amount but no archetype consumes
	// it today.
	d := extractDetails(row.Description)

	entry := ledger.Transaction{
		Location:  loc,
		Date:      row.Date,
		Flag:      ledger.FlagImport,
		Narration: narration(row),
	}

	var positions ledger.Account
	if row.Symbol != "" {
		positions = accounts.Positions.Sub(row.Symbol)
	}

	switch row.Action {
	case ActionAdjRR, ActionRtcRR, ActionExhAB:
		// Administrative rows: record the entry, post nothing.

	case ActionDivF6:
		if !d.HasAmount {
			return ledger.Transaction{}, &PreconditionError{
				Action: row.Action,
				Detail: fmt.Sprintf("expected a dollar amount in description %q", row.Description),
			}
		}
		entry.AddPostingWithCost(positions, row.Quantity, row.Symbol, d.Amount, row.Currency)
		entry.AddPosting(accounts.Dividend, row.Quantity.Mul(d.Amount).Neg(), row.Currency)

	case ActionBuy, ActionSell:
		entry.AddPostingWithCost(positions, row.Quantity, row.Symbol, row.Price, row.Currency)
		entry.AddPosting(accounts.Cash, row.Amount, row.Currency)

	case ActionSelFF, ActionPurFF:
		if d.HasAmount {
			return ledger.Transaction{}, &PreconditionError{
				Action: row.Action,
				Detail: fmt.Sprintf("unexpected dollar amount in description %q", row.Description),
			}
		}
		entry.AddPosting(positions, row.Quantity, row.Symbol)

	case ActionDist:
		if d.HasAmount {
			return ledger.Transaction{}, &PreconditionError{
				Action: row.Action,
				Detail: fmt.Sprintf("unexpected dollar amount in description %q", row.Description),
			}
		}
		entry.AddPosting(accounts.Dividend, row.Amount.Neg(), row.Currency)
		entry.AddPosting(accounts.Cash, row.Amount, row.Currency)

		// The per-share rate has no posting of its own; surface it in
		// the narration.
		entry.Narration = joinFragments(entry.Narration, sourceScale(row.Price)+" per share")

	default:
		return ledger.Transaction{}, &UnknownActionError{Action: row.Action}
	}

	return entry, nil
}

// narration builds the entry's summary text from the row's action, symbol
// and description, plus the settlement date when it differs from the trade
// date.
func narration(row CanonicalRow) string {
	settlement := ""
	if !row.Settlement.Equal(row.Date) {
		settlement = "Settlement: " + row.Settlement.Format(dateFormat)
	}
	return joinFragments(row.Action, row.Symbol, row.Description, settlement)
}

func joinFragments(fragments ...string) string {
	parts := fragments[:0]
	for _, f := range fragments {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, narrationSep)
}

// sourceScale renders a decimal at the scale it was parsed with, so a
// statement price of 2.50 reads back as "2.50" rather than "2.5".
func sourceScale(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

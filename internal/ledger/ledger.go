// Package ledger holds the double-entry value types that importers emit.
// The types are deliberately dumb: balance checking, inventory booking and
// rendering to a journal format all happen downstream.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlagImport marks a transaction as imported but not yet reviewed.
const FlagImport = "!"

// Account is a colon-separated account name, e.g.
// "Assets:Investments:RBC:Cash".
type Account string

// Sub returns a child account with segment appended,
// e.g. Account("Assets:Positions").Sub("AAPL") -> "Assets:Positions:AAPL".
func (a Account) Sub(segment string) Account {
	if a == "" {
		return Account(segment)
	}
	return Account(string(a) + ":" + segment)
}

// FileLocation identifies where in a source file an entry came from.
type FileLocation struct {
	Filename string
	Line     int // row index within the source, zero-based
}

// Lot records the acquisition cost attached to a posting: unit cost and the
// currency that cost is denominated in.
type Lot struct {
	Cost     decimal.Decimal
	Currency string
}

// Posting is one leg of a transaction: a signed number of units of a
// commodity in an account, with an optional cost basis lot.
type Posting struct {
	Account   Account
	Units     decimal.Decimal
	Commodity string // currency code or position symbol
	Lot       *Lot   // nil for cost-less postings
}

// Transaction is one imported entry: where it came from, when, a narration,
// and its postings. A transaction may legitimately carry zero postings when
// the source row has no economic effect.
type Transaction struct {
	Location  FileLocation
	Date      time.Time
	Flag      string
	Narration string
	Postings  []Posting
}

// AddPosting appends a cost-less leg.
func (t *Transaction) AddPosting(account Account, units decimal.Decimal, commodity string) {
	t.Postings = append(t.Postings, Posting{
		Account:   account,
		Units:     units,
		Commodity: commodity,
	})
}

// AddPostingWithCost appends a leg carrying a cost basis lot.
func (t *Transaction) AddPostingWithCost(account Account, units decimal.Decimal, commodity string, cost decimal.Decimal, costCurrency string) {
	t.Postings = append(t.Postings, Posting{
		Account:   account,
		Units:     units,
		Commodity: commodity,
		Lot:       &Lot{Cost: cost, Currency: costCurrency},
	})
}

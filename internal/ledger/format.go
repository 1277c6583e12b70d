package ledger

import (
	"fmt"
	"strings"
)

const dateFormat = "2006-01-02"

// Format renders a transaction as plain text for terminal output. This is a
// debugging convenience, not a journal serialization.
func Format(t Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %q\n", t.Date.Format(dateFormat), t.Flag, t.Narration)
	for _, p := range t.Postings {
		if p.Lot != nil {
			fmt.Fprintf(&b, "  %-50s %s %s {%s %s}\n",
				p.Account, p.Units, p.Commodity, p.Lot.Cost, p.Lot.Currency)
		} else {
			fmt.Fprintf(&b, "  %-50s %s %s\n", p.Account, p.Units, p.Commodity)
		}
	}
	return b.String()
}

package rbc

import (
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerimport-dev/ledgerimport/internal/config"
	"github.com/ledgerimport-dev/ledgerimport/internal/importer"
	"github.com/ledgerimport-dev/ledgerimport/internal/ledger"
	"github.com/ledgerimport-dev/ledgerimport/internal/ssconvert"
	"github.com/ledgerimport-dev/ledgerimport/internal/statement"
)

// FormatName identifies this importer in the registry.
const FormatName = "rbcinvesting"

// Activity statements are Excel-XML; the activity range in the sheet title
// is the cheapest reliable signature.
var activityRe = regexp.MustCompile(`Activity\d{8} - \d{8}`)

// Importer imports RBC Direct Investing activity statements.
type Importer struct {
	// Converter runs the spreadsheet-to-CSV conversion.
	Converter ssconvert.Converter
	// Progress receives a per-file banner; nil discards it.
	Progress io.Writer
}

var _ importer.Importer = (*Importer)(nil)

// New returns an Importer with the default converter.
func New() *Importer {
	return &Importer{}
}

// Format returns the statement format name.
func (im *Importer) Format() string { return FormatName }

// Matches reports whether contents look like an RBC activity statement.
func (im *Importer) Matches(contents []byte) bool {
	return activityRe.Match(contents)
}

// Import converts the statement at path: external CSV conversion, then one
// transaction per row. Any failure aborts the whole file; no transactions
// are returned for a file with a bad row.
func (im *Importer) Import(ctx context.Context, path string, accounts *config.Mapping) (*importer.Result, error) {
	progress := im.Progress
	if progress == nil {
		progress = io.Discard
	}
	fmt.Fprintf(progress, "%s %s\n", strings.Repeat("-", 40), path)

	tmpDir, err := os.MkdirTemp("", "ledgerimport-")
	if err != nil {
		return nil, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	csvPath, err := im.Converter.Convert(ctx, path, tmpDir)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening converted statement: %w", err)
	}
	defer f.Close()

	rows, err := statement.ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	result := &importer.Result{
		RunID:  uuid.NewString(),
		File:   path,
		Format: FormatName,
	}
	for i, raw := range rows {
		row, err := Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i, err)
		}
		entry, err := Synthesize(row, accounts, ledger.FileLocation{Filename: path, Line: i})
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i, err)
		}
		result.Transactions = append(result.Transactions, entry)
	}
	return result, nil
}

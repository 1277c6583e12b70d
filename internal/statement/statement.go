// Package statement reads converted activity-statement CSV files into raw
// string-typed rows. All typing and interpretation happens later, in the
// normalizer; this package only cares that the expected columns exist.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one raw statement row, every field still text.
type Row struct {
	Action      string
	Symbol      string
	Description string
	Date        string
	Settlement  string
	Quantity    string
	Price       string
	Amount      string
	Currency    string
}

// Columns that must be present in the converted statement, by header name.
var requiredColumns = []string{
	"action", "symbol", "description", "date", "settlement",
	"quantity", "price", "amount", "currency",
}

// ReadRows reads a converted statement and returns its rows in file order.
// The first record is the header; every required column must appear in it.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("statement is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading statement header: %w", err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		row, err := unmarshalRow(rec, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("statement is missing column %q", name)
		}
	}
	return index, nil
}

func unmarshalRow(rec []string, index map[string]int) (Row, error) {
	field := func(name string) (string, error) {
		i := index[name]
		if i >= len(rec) {
			return "", fmt.Errorf("record has %d fields, column %q is at %d", len(rec), name, i)
		}
		return rec[i], nil
	}

	var row Row
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{"action", &row.Action},
		{"symbol", &row.Symbol},
		{"description", &row.Description},
		{"date", &row.Date},
		{"settlement", &row.Settlement},
		{"quantity", &row.Quantity},
		{"price", &row.Price},
		{"amount", &row.Amount},
		{"currency", &row.Currency},
	} {
		v, err := field(f.name)
		if err != nil {
			return Row{}, err
		}
		*f.dst = v
	}
	return row, nil
}

// Package ssconvert shells out to Gnumeric's ssconvert to turn a
// spreadsheet into a CSV file. The statements this importer handles are
// Excel-XML files that no Go spreadsheet reader copes with; ssconvert does.
package ssconvert

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultCommand is the converter binary looked up on PATH.
const DefaultCommand = "ssconvert"

// ConversionError reports a failed external conversion, including whatever
// the converter wrote to its combined output.
type ConversionError struct {
	Command string
	Input   string
	Output  string
	Err     error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s with %s: %v: %s", e.Input, e.Command, e.Err, e.Output)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Converter runs the external spreadsheet-to-CSV conversion.
type Converter struct {
	// Command overrides the converter binary; empty means DefaultCommand.
	Command string
}

// Convert converts the spreadsheet at src into a CSV file in dir and
// returns the CSV path. A non-zero exit status is fatal. The call blocks
// until the converter finishes or ctx is done.
func (c Converter) Convert(ctx context.Context, src, dir string) (string, error) {
	command := c.Command
	if command == "" {
		command = DefaultCommand
	}

	base := filepath.Base(src)
	dst := filepath.Join(dir, base[:len(base)-len(filepath.Ext(base))]+".csv")

	cmd := exec.CommandContext(ctx, command, src, dst)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", &ConversionError{Command: command, Input: src, Output: string(out), Err: err}
	}

	if _, err := os.Stat(dst); err != nil {
		return "", &ConversionError{Command: command, Input: src, Output: "no output file produced", Err: err}
	}
	return dst, nil
}

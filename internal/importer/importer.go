// Package importer dispatches statement files to format importers by
// sniffing file contents, and handles filing of processed statements.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledgerimport-dev/ledgerimport/internal/config"
	"github.com/ledgerimport-dev/ledgerimport/internal/ledger"
)

// Result is one completed import of one statement file.
type Result struct {
	RunID        string // unique per import run, for filing and diagnostics
	File         string
	Format       string
	Transactions []ledger.Transaction
}

// Importer converts one statement file into ledger transactions.
type Importer interface {
	// Format names the statement format, e.g. "rbcinvesting".
	Format() string
	// Matches reports whether file contents look like this format.
	Matches(contents []byte) bool
	// Import converts the file at path. All-or-nothing: any row error
	// fails the whole file.
	Import(ctx context.Context, path string, accounts *config.Mapping) (*Result, error)
}

// Registry holds named importers.
type Registry struct {
	importers map[string]Importer
	order     []string
}

// NewRegistry creates an empty importer registry.
func NewRegistry() *Registry {
	return &Registry{importers: make(map[string]Importer)}
}

// Register adds an importer. Panics on duplicate format.
func (r *Registry) Register(im Importer) {
	key := strings.ToLower(im.Format())
	if _, ok := r.importers[key]; ok {
		panic("duplicate importer format: " + key)
	}
	r.importers[key] = im
	r.order = append(r.order, key)
}

// Get returns the importer for format, or nil.
func (r *Registry) Get(format string) Importer {
	return r.importers[strings.ToLower(format)]
}

// Detect returns the first registered importer whose Matches accepts the
// contents, or nil.
func (r *Registry) Detect(contents []byte) Importer {
	for _, key := range r.order {
		if im := r.importers[key]; im.Matches(contents) {
			return im
		}
	}
	return nil
}

// DetectFile reads the file at path and sniffs its format.
func (r *Registry) DetectFile(path string) (Importer, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return r.Detect(contents), nil
}

// processedDir is where imported statements are filed.
const processedDir = "processed"

// FileInfo describes a statement file found by Scan.
type FileInfo struct {
	Name   string
	Path   string
	Format string
}

// Scan walks dir (non-recursively) and returns the files a registered
// importer recognizes, in name order.
func Scan(dir string, reg *Registry) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		im, err := reg.DetectFile(path)
		if err != nil {
			return nil, err
		}
		if im == nil {
			continue
		}
		files = append(files, FileInfo{Name: e.Name(), Path: path, Format: im.Format()})
	}
	return files, nil
}

// MarkProcessed moves a statement from dir to dir/processed/.
func MarkProcessed(dir, fileName string) error {
	dstDir := filepath.Join(dir, processedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}
	if err := os.Rename(filepath.Join(dir, fileName), filepath.Join(dstDir, fileName)); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

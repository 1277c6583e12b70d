package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerimport-dev/ledgerimport/internal/config"
	"github.com/ledgerimport-dev/ledgerimport/internal/importer"
	"github.com/ledgerimport-dev/ledgerimport/internal/ledger"
	"github.com/ledgerimport-dev/ledgerimport/internal/rbc"
	"github.com/ledgerimport-dev/ledgerimport/internal/ssconvert"
)

func newImportCommand() *cobra.Command {
	var mappingPath string
	var format string
	var converterCmd string

	cmd := &cobra.Command{
		Use:   "import <file-or-directory>...",
		Short: "Import activity statements and print the resulting transactions",
		Long: "Import converts each statement into ledger transactions. A directory\n" +
			"argument is scanned for recognized statement files; statements imported\n" +
			"from a directory are filed into its processed/ subdirectory afterwards.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := config.Load(mappingPath)
			if err != nil {
				return err
			}
			return runImport(cmd, args, accounts, format, converterCmd)
		},
	}

	cmd.Flags().StringVar(&mappingPath, "accounts", MappingFile, "account mapping YAML file")
	cmd.Flags().StringVar(&format, "format", "", "force a statement format instead of sniffing")
	cmd.Flags().StringVar(&converterCmd, "converter", "", "override the spreadsheet converter command")

	return cmd
}

func runImport(cmd *cobra.Command, paths []string, accounts *config.Mapping, format, converterCmd string) error {
	reg := defaultRegistry(converterCmd)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("statting %s: %w", path, err)
		}
		if info.IsDir() {
			if err := importDir(cmd, reg, path, accounts); err != nil {
				return err
			}
			continue
		}
		if err := importFile(cmd, reg, path, accounts, format); err != nil {
			return err
		}
	}
	return nil
}

// importDir scans a statements directory, imports every recognized file and
// files it into processed/.
func importDir(cmd *cobra.Command, reg *importer.Registry, dir string, accounts *config.Mapping) error {
	files, err := importer.Scan(dir, reg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "no recognized statements in %s\n", dir)
		return nil
	}

	for _, f := range files {
		if err := importFile(cmd, reg, f.Path, accounts, f.Format); err != nil {
			return err
		}
		if err := importer.MarkProcessed(dir, f.Name); err != nil {
			return err
		}
	}
	return nil
}

// importFile imports one statement and prints its transactions. An empty
// format means sniffing the file contents.
func importFile(cmd *cobra.Command, reg *importer.Registry, path string, accounts *config.Mapping, format string) error {
	im := reg.Get(format)
	if format == "" {
		var err error
		if im, err = reg.DetectFile(path); err != nil {
			return err
		}
	}
	if im == nil {
		return fmt.Errorf("%s: no importer recognizes this file", path)
	}

	result, err := im.Import(cmd.Context(), path, accounts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, entry := range result.Transactions {
		fmt.Fprintln(out, ledger.Format(entry))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "imported %d transactions from %s (run %s)\n",
		len(result.Transactions), path, result.RunID)
	return nil
}

// defaultRegistry returns a registry with all built-in statement importers.
// converterCmd overrides the external conversion command when non-empty.
func defaultRegistry(converterCmd string) *importer.Registry {
	reg := importer.NewRegistry()
	reg.Register(newRBCImporter(converterCmd, os.Stderr))
	return reg
}

// newRBCImporter builds the RBC importer with progress going to w.
func newRBCImporter(converterCmd string, w io.Writer) *rbc.Importer {
	im := rbc.New()
	im.Converter = ssconvert.Converter{Command: converterCmd}
	im.Progress = w
	return im
}

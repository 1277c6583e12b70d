package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <file>...",
		Short: "Report which statement format each file matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := defaultRegistry("")
			for _, path := range args {
				im, err := reg.DetectFile(path)
				if err != nil {
					return err
				}
				format := "unknown"
				if im != nil {
					format = im.Format()
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, format)
			}
			return nil
		},
	}
}

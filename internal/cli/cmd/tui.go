package cmd

import (
	"github.com/spf13/cobra"

	"sizef/internal/ui"
)

func newTuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tui [path]",
		Short:         "Browse the largest files under a path interactively",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := assembleOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			pfx, err := scaleFor(opts)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			if err := ui.Run(cmd.Context(), root, opts, pfx, separatorFor(opts)); err != nil {
				return &ExitError{Code: ExitScanError, Err: err}
			}
			return nil
		},
	}
	cmd.Flags().Int("top", 20, "Number of largest files to display")
	return cmd
}

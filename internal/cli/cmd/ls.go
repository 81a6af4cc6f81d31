package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sizef"
	"sizef/internal/scan"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ls [paths...]",
		Short:         "Show sizes of files and directories",
		Long:          "Shows the humanized size of each path. Directories are summed recursively; unreadable entries are skipped.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          runLs,
	}
}

func runLs(cmd *cobra.Command, args []string) error {
	opts, err := assembleOptions(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	pfx, err := scaleFor(opts)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	sep := separatorFor(opts)

	if len(args) == 0 {
		args = []string{"."}
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	// When the output writer is a terminal, keep lines inside its width.
	maxPath := 0
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, werr := term.GetSize(int(f.Fd())); werr == nil && w > 16 {
			maxPath = w - 14 // size column plus padding
		}
	}

	for _, path := range args {
		res, serr := scan.Size(cmd.Context(), path)
		if serr != nil {
			return &ExitError{Code: ExitScanError, Err: serr}
		}
		size := sizef.New(res.Total, pfx, sep).Render(opts.Precision) + opts.Unit
		fmt.Fprintf(out, "%12s  %s\n", size, truncatePath(path, maxPath))
		if opts.Verbose && res.Skipped > 0 {
			fmt.Fprintf(errOut, "%s: skipped %d unreadable entries\n", path, res.Skipped)
		}
	}
	return nil
}

// truncatePath shortens s to at most n runes, 0 meaning no limit.
func truncatePath(s string, n int) string {
	if n <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}

package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"sizef"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "fmt [values...]",
		Short:         "Format raw integer values from arguments or stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          runFormat,
	}
}

func runFormat(cmd *cobra.Command, args []string) error {
	opts, err := assembleOptions(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	pfx, err := scaleFor(opts)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	sep := separatorFor(opts)
	out := cmd.OutOrStdout()

	emit := func(raw string) error {
		n, perr := strconv.ParseUint(raw, 10, 64)
		if perr != nil {
			return fmt.Errorf("invalid value %q: want a non-negative integer", raw)
		}
		_, werr := fmt.Fprintf(out, "%s%s\n", sizef.New(n, pfx, sep).Render(opts.Precision), opts.Unit)
		return werr
	}

	if len(args) > 0 {
		for _, a := range args {
			if err := emit(a); err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
		}
		return nil
	}

	// No arguments: read one value per line from stdin.
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := emit(line); err != nil {
			return &ExitError{Code: ExitCLIError, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	return nil
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sizef/internal/config"
)

const (
	ExitOK        = 0
	ExitCLIError  = 1
	ExitScanError = 2
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sizef [values...]",
		Short:         "Humanize raw sizes with exact prefix scaling",
		Long:          "Sizef turns raw non-negative integers into human-readable strings with scaled unit prefixes (\"42.0MiB\", \"4.0kB\"). All scaling is done in exact integer arithmetic: digits are truncated, never rounded, so the output is always a correct prefix of the true value. Values come from the command line or stdin; the ls and tui subcommands read sizes from the filesystem instead.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to formatting, same as the 'fmt' subcommand.
			return runFormat(cmd, args)
		},
	}

	// Persistent flags available to all subcommands
	bindFormatFlags(root.PersistentFlags())

	// Subcommands
	root.AddCommand(newFmtCmd())
	root.AddCommand(newLsCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindFormatFlags(fs *pflag.FlagSet) {
	fs.Bool("si", false, "Use SI (power-of-1000) prefixes instead of binary")
	fs.IntP("precision", "p", 1, "Max fractional digits to display")
	fs.Bool("comma", false, "Use ',' as the decimal separator")
	fs.StringP("unit", "u", "B", "Unit suffix appended after the prefix")
	fs.Uint64("scale-base", 0, "Base of a custom prefix scale; requires --scale-labels")
	fs.StringSlice("scale-labels", nil, "Comma-separated labels of a custom prefix scale, smallest first")
	fs.BoolP("verbose", "v", false, "Report skipped filesystem entries and other details")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	_ = config.Init(root)
	return root.ExecuteContext(ctx)
}

// Helpers

// flagChanged reports whether the flag was set explicitly, whether it
// is local or inherited from the root.
func flagChanged(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Changed
	}
	if f := cmd.InheritedFlags().Lookup(name); f != nil {
		return f.Changed
	}
	return false
}

// getString resolves a flag value with precedence: flag > env/config > default.
func getString(cmd *cobra.Command, name, def string) string {
	if flagChanged(cmd, name) {
		if v, err := cmd.Flags().GetString(name); err == nil {
			return v
		}
	}
	if viper.IsSet(name) {
		return viper.GetString(name)
	}
	if v, err := cmd.Flags().GetString(name); err == nil {
		return v
	}
	return def
}

func getBool(cmd *cobra.Command, name string, def bool) bool {
	if flagChanged(cmd, name) {
		if v, err := cmd.Flags().GetBool(name); err == nil {
			return v
		}
	}
	if viper.IsSet(name) {
		return viper.GetBool(name)
	}
	if v, err := cmd.Flags().GetBool(name); err == nil {
		return v
	}
	return def
}

func getInt(cmd *cobra.Command, name string, def int) int {
	if flagChanged(cmd, name) {
		if v, err := cmd.Flags().GetInt(name); err == nil {
			return v
		}
	}
	if viper.IsSet(name) {
		return viper.GetInt(name)
	}
	if v, err := cmd.Flags().GetInt(name); err == nil {
		return v
	}
	return def
}

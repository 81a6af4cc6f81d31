package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sizef"
	"sizef/internal/model"
)

// assembleOptions resolves flags, env, and config into Options with
// precedence: flag > env/config > default.
func assembleOptions(cmd *cobra.Command) (model.Options, error) {
	opts := model.Options{
		Scale:     model.ScaleBinary,
		Precision: getInt(cmd, "precision", sizef.DefaultPrecision),
		Comma:     getBool(cmd, "comma", false),
		Unit:      getString(cmd, "unit", "B"),
		Top:       getInt(cmd, "top", 20),
		Verbose:   getBool(cmd, "verbose", false),
	}
	if getBool(cmd, "si", false) {
		opts.Scale = model.ScaleSI
	}

	base, _ := cmd.Flags().GetUint64("scale-base")
	labels, _ := cmd.Flags().GetStringSlice("scale-labels")
	if base != 0 || len(labels) > 0 {
		if base == 0 || len(labels) == 0 {
			return model.Options{}, errors.New("--scale-base and --scale-labels must be given together")
		}
		opts.Scale = model.ScaleCustom
		opts.Base = base
		opts.Labels = labels
	}

	if opts.Precision < 0 {
		return model.Options{}, fmt.Errorf("invalid --precision: %d (must be non-negative)", opts.Precision)
	}
	if opts.Top <= 0 {
		opts.Top = 20
	}
	return opts, nil
}

// scaleFor maps the selected scale to its prefix table. Custom scales
// are validated here, before any rendering happens.
func scaleFor(opts model.Options) (sizef.Prefixes, error) {
	switch opts.Scale {
	case model.ScaleSI:
		return sizef.SI, nil
	case model.ScaleCustom:
		s, err := sizef.NewScale(opts.Base, opts.Labels...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return sizef.Binary, nil
	}
}

func separatorFor(opts model.Options) sizef.Separator {
	if opts.Comma {
		return sizef.Comma
	}
	return sizef.Point
}

package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sizef/internal/dirs"
)

// Init wires Viper with config paths, env, defaults, and flag bindings.
// It is non-fatal: any errors are returned for optional handling by caller.
func Init(root *cobra.Command) error {
	// Setup config search path
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		_ = dirs.Ensure(cfgDir)
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: SIZEF_*
	viper.SetEnvPrefix("SIZEF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag("si", root.PersistentFlags().Lookup("si"))
	_ = viper.BindPFlag("precision", root.PersistentFlags().Lookup("precision"))
	_ = viper.BindPFlag("comma", root.PersistentFlags().Lookup("comma"))
	_ = viper.BindPFlag("unit", root.PersistentFlags().Lookup("unit"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	// Read config file if present (ignore not found)
	_ = viper.ReadInConfig()

	return nil
}

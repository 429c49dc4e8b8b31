package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ytget/ytinfo/internal/config"
	"github.com/ytget/ytinfo/internal/where"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration keys, their current values and environment variables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "%s %s\n\n", color.New(color.Faint).Sprint("config dir"), where.Config())

		for _, key := range config.Keys() {
			field := config.Default[key]
			_, _ = fmt.Fprintf(out, "%s = %v\n", color.New(color.FgCyan, color.Bold).Sprint(key), viper.Get(key))
			_, _ = fmt.Fprintf(out, "  %s\n", color.New(color.Faint).Sprint(field.Env()))
			_, _ = fmt.Fprintf(out, "  %s\n", field.Description)
		}
	},
}

// Package cli provides the command-line interface for pgident
package cli

import "github.com/spf13/cobra"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pgident",
	Short: "Format PostgreSQL identifiers safely",
	Long: `pgident formats PostgreSQL identifiers and dotted name paths so they can
be embedded in SQL text safely. Identifiers that need it are wrapped in
double quotes with embedded quotes escaped; identifiers that are already
syntax-safe are left untouched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

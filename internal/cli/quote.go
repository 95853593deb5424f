package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stestagg/pgident"
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote PART...",
	Short: "Render a dotted name from its parts",
	Long: `Render one or more identifier parts as a canonical dotted name.
Each argument is one component of the path; dots inside an argument are
ordinary characters and force quoting, they are never treated as separators.

Examples:
  pgident quote public users            # public.users
  pgident quote public "My Table"       # public."My Table"
  pgident quote foo.foo                 # "foo.foo"
  pgident quote db schema old --leaf new  # db.schema.new`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		leaf, _ := cmd.Flags().GetString("leaf")

		name, err := pgident.NewPath(args...)
		if err != nil {
			return fmt.Errorf("invalid identifier: %w", err)
		}
		if leaf != "" {
			if name, err = name.WithLeaf(leaf); err != nil {
				return fmt.Errorf("invalid leaf: %w", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().String("leaf", "", "Replace the rightmost component before rendering")
}

package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage pricebook configuration file values.",
	Long: `Create and display the pricebook configuration file.

The configuration stores application-wide values:
- store.url / store.api_key
- match.threshold / match.min_description_len / match.price_lookahead
- match.min_price / match.max_price / match.denylist
- import.file_prefix / import.skip_marker
- log.level / log.file`,
	Example: `
  # Create default config in $HOME/.pricebook.yaml
  pricebook config create

  # Show active config and source file
  pricebook config show
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

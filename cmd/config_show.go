package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pricebook/config"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  pricebook config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", configPath)
		} else {
			fmt.Println("No config file loaded, showing defaults.")
		}
		fmt.Println("Configuration:")
		fmt.Printf("store.url: %s\n", cfg.Store.URL)
		fmt.Printf("store.api_key: %s\n", maskSecret(cfg.Store.APIKey))
		fmt.Printf("match.threshold: %g\n", cfg.Match.Threshold)
		fmt.Printf("match.min_description_len: %d\n", cfg.Match.MinDescriptionLen)
		fmt.Printf("match.price_lookahead: %d\n", cfg.Match.PriceLookahead)
		fmt.Printf("match.min_price: %g\n", cfg.Match.MinPrice)
		fmt.Printf("match.max_price: %g\n", cfg.Match.MaxPrice)
		fmt.Printf("match.denylist: %s\n", strings.Join(cfg.Match.Denylist, ", "))
		fmt.Printf("import.file_prefix: %s\n", cfg.Import.FilePrefix)
		fmt.Printf("import.skip_marker: %s\n", cfg.Import.SkipMarker)
		fmt.Printf("log.level: %s\n", cfg.Log.Level)
		fmt.Printf("log.file: %s\n", cfg.Log.File)
	},
}

func maskSecret(value string) string {
	if value == "" {
		return "(not set)"
	}
	if len(value) <= 4 {
		return "****"
	}
	return value[:4] + strings.Repeat("*", len(value)-4)
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

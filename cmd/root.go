package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pricebook/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pricebook",
	Short: "Import customer price-list spreadsheets into a product catalog.",
	Long: `This CLI reads loosely structured price-list workbooks (Excel, CSV), one per
customer, extracts product description/price/brand lines, matches them against
the canonical product catalog, and persists customer-product price associations.

Workbooks have no fixed schema: header rows are located by content, column
layout may change mid-sheet, and sheets without any recognizable header fall
back to a positional scan.`,
	Example: `
  # Create configuration file
  pricebook config create

  # Import all vendor workbooks from a folder into the remote store
  pricebook import --dir ./SOMAS

  # Import selected workbooks into a local SQLite database
  pricebook import -i "SOMAS FERRAGENS SILVA PE 12.xlsx" --db ./pricebook.db

  # Preview the detected header and first rows of one workbook
  pricebook scan -i "SOMAS FERRAGENS SILVA PE 12.xlsx"

  # Emit a bulk catalog migration script from a folder of workbooks
  pricebook migrate --dir ./SOMAS --output ./migration.sql

  # Browse an import database over HTTP
  pricebook serve --db ./pricebook.db
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.pricebook.yaml, then ./.pricebook.yaml)")

	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if !requiresConfig(cmd) {
			return nil
		}

		_, err := config.LoadAndValidate()
		return err
	}
}

func requiresConfig(cmd *cobra.Command) bool {
	return cmd != nil && cmd.Name() == "import"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pricebook")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: pricebook config create")
	}
}

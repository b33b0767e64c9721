package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pricebook/config"
	"pricebook/importer"
	"pricebook/internal/logging"
	"pricebook/output"
)

var (
	migrateDir    string
	migrateOutput string
	migrateFormat string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Emit a bulk SQL migration script seeding the product catalog",
	Long: `Extract product lines from every workbook in a folder, deduplicate them by
normalized description (first occurrence wins), and write one SQL script that
bulk-inserts the unique products.

This is the offline alternative to importing against a live store: the script
can be applied directly to the backing database to seed the catalog.`,
	Example: `
  # Generate a migration script from a folder of vendor workbooks
  pricebook migrate --dir ./SOMAS --output ./migration.sql

  # Review the unique product set as CSV instead
  pricebook migrate --dir ./SOMAS --output ./products.csv --format csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		logger := logging.Setup(cfg.Log.Level, cfg.Log.File)

		inputs, err := collectInputs(nil, migrateDir, cfg.Import.FilePrefix)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			return fmt.Errorf("no workbooks found in %s", migrateDir)
		}

		extractor := importer.ExtractorFromConfig(cfg.Match)
		candidates := importer.UniqueCandidates(inputs, extractor, logger)

		products := make([]output.MigrationProduct, 0, len(candidates))
		for _, candidate := range candidates {
			products = append(products, output.MigrationProduct{
				Name:  strings.TrimSpace(candidate.Description),
				Unit:  candidate.Unit,
				Price: candidate.Price,
				Brand: candidate.Brand,
			})
		}

		writer, err := output.WriterForFormat(migrateFormat)
		if err != nil {
			return err
		}
		if err := writer.Write(migrateOutput, products); err != nil {
			return err
		}

		fmt.Printf("Migration written. Files: %d, Unique products: %d, Output: %s\n",
			len(inputs), len(products), migrateOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)

	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Folder to scan for vendor workbooks")
	migrateCmd.Flags().StringVar(&migrateOutput, "output", "./migration.sql", "Path of the generated file")
	migrateCmd.Flags().StringVar(&migrateFormat, "format", "sql", "Output format: sql|csv")

	_ = migrateCmd.MarkFlagRequired("dir")
}

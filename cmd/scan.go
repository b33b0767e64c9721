package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pricebook/sheet"
)

var (
	scanInput string
	scanRows  int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Preview the detected header and first data rows of a workbook",
	Long: `Read one workbook, locate the most plausible header row by keyword probing,
and print the header plus the following data rows as JSON.

Useful for checking how a new vendor file will be interpreted before running
an import against it.`,
	Example: `
  # Preview a workbook with the default row count
  pricebook scan -i "SOMAS FERRAGENS SILVA PE 12.xlsx"

  # Show more data rows
  pricebook scan -i ./pricelist.csv --rows 25
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := sheet.Open(scanInput)
		if err != nil {
			return err
		}

		preview := sheet.BuildPreview(rows, scanRows)
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(preview); err != nil {
			return fmt.Errorf("encode preview: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanInput, "input", "i", "", "Workbook to preview")
	scanCmd.Flags().IntVar(&scanRows, "rows", sheet.DefaultPreviewRows, "Maximum data rows to include")

	_ = scanCmd.MarkFlagRequired("input")
}

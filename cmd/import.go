package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"pricebook/config"
	"pricebook/importer"
	"pricebook/internal/logging"
	"pricebook/storage"
	"pricebook/store"
)

var (
	importInputs []string
	importDir    string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import customer price-list workbooks into the product store",
	Long: `Read vendor workbooks, extract product description/price/brand lines, match
each description against the product catalog (creating catalog entries when no
confident match exists), and replace each customer's product associations.

Each workbook belongs to one customer; the customer name and contract number
are derived from the filename. Workbooks whose filename contains the
configured skip marker are treated as templates and ignored.

By default associations are written to the remote store configured under
store.url/store.api_key. Pass --db to write to a local SQLite database
instead.`,
	Example: `
  # Import every workbook in a folder into the remote store
  pricebook import --dir ./SOMAS

  # Import selected workbooks
  pricebook import -i "SOMAS FERRAGENS SILVA PE 12.xlsx" -i "SOMAS OBRAS LTDA.xlsx"

  # Import into a local SQLite database instead of the remote store
  pricebook import --dir ./SOMAS --db ./pricebook.db

  # Import with custom config file
  pricebook --configFile ./custom-pricebook.yaml import --dir ./SOMAS
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		logger := logging.Setup(cfg.Log.Level, cfg.Log.File)

		inputs, err := collectInputs(importInputs, importDir, cfg.Import.FilePrefix)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			return fmt.Errorf("no input workbooks found (use --input or --dir)")
		}

		var target store.Store
		if importDBPath != "" {
			sqliteStore, err := storage.OpenSQLite(importDBPath)
			if err != nil {
				return err
			}
			defer sqliteStore.Close()
			target = sqliteStore
		} else {
			if cfg.Store.URL == "" {
				return fmt.Errorf("store.url is not configured; set it or pass --db for a local database")
			}
			client, err := store.NewRESTClient(store.ClientConfig{
				BaseURL: cfg.Store.URL,
				APIKey:  cfg.Store.APIKey,
			})
			if err != nil {
				return err
			}
			target = client
		}

		service := importer.NewService(target, *cfg, logger)
		result, err := service.Run(cmd.Context(), inputs)
		if err != nil {
			return err
		}

		for _, summary := range result.Summaries {
			if summary.Failed {
				fmt.Printf("%s: FAILED (%s)\n", summary.Customer, summary.Reason)
				continue
			}
			fmt.Printf("%s: %d linked (%d matched, %d created, %d skipped)\n",
				summary.Customer, summary.Linked, summary.Matched, summary.Created, summary.Skipped)
		}
		fmt.Printf("Import completed. Files: %d, Skipped files: %d, Rows read: %d, Matched: %d, Created: %d, Skipped rows: %d, Failed customers: %d\n",
			result.FilesProcessed,
			result.FilesSkipped,
			result.RowsRead,
			result.Matched,
			result.Created,
			result.Skipped,
			result.CustomersFailed,
		)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringArrayVarP(&importInputs, "input", "i", nil, "Input workbook path (repeatable)")
	importCmd.Flags().StringVar(&importDir, "dir", "", "Folder to scan for vendor workbooks")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Write to a local SQLite database instead of the remote store")
}

// collectInputs merges explicit inputs with a folder scan. The folder scan
// keeps only workbook files carrying the vendor prefix, matching how vendor
// exports are dropped into a shared download folder.
func collectInputs(inputs []string, dir, prefix string) ([]string, error) {
	collected := append([]string(nil), inputs...)

	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read workbook folder %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !isWorkbookFile(name) {
				continue
			}
			if prefix != "" && !strings.Contains(name, prefix) {
				continue
			}
			collected = append(collected, filepath.Join(dir, name))
		}
	}

	sort.Strings(collected)
	return collected, nil
}

func isWorkbookFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".csv":
		return true
	default:
		return false
	}
}

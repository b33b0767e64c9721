package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"pricebook/catalog"
	"pricebook/config"
	"pricebook/customer"
	"pricebook/sheet"
	"pricebook/store"
)

// Summary is the per-customer outcome of one workbook import.
type Summary struct {
	File     string
	Customer string
	Matched  int
	Created  int
	Skipped  int
	Linked   int
	Failed   bool
	Reason   string
}

// Result aggregates one import run across all workbooks.
type Result struct {
	FilesProcessed  int
	FilesSkipped    int
	RowsRead        int
	Matched         int
	Created         int
	Skipped         int
	CustomersFailed int
	Summaries       []Summary
}

// Service runs workbook imports against one persistence target. The catalog
// index is seeded once per run and shared across all files, so a product
// created for one customer matches exactly for the next.
type Service struct {
	store      store.Store
	extractor  *sheet.Extractor
	threshold  float64
	filePrefix string
	skipMarker string
	log        zerolog.Logger
}

func NewService(st store.Store, cfg config.Config, logger zerolog.Logger) *Service {
	return &Service{
		store:      st,
		extractor:  ExtractorFromConfig(cfg.Match),
		threshold:  cfg.Match.Threshold,
		filePrefix: cfg.Import.FilePrefix,
		skipMarker: cfg.Import.SkipMarker,
		log:        logger,
	}
}

// ExtractorFromConfig builds a row extractor from the matching configuration,
// filling unset fields with the extractor defaults.
func ExtractorFromConfig(cfg config.MatchConfig) *sheet.Extractor {
	extractor := sheet.NewExtractor()
	if cfg.MinDescriptionLen > 0 {
		extractor.MinDescriptionLen = cfg.MinDescriptionLen
	}
	if cfg.PriceLookahead > 0 {
		extractor.PriceLookahead = cfg.PriceLookahead
	}
	if cfg.MinPrice > 0 {
		extractor.MinPrice = cfg.MinPrice
	}
	if cfg.MaxPrice > 0 {
		extractor.MaxPrice = cfg.MaxPrice
	}
	if len(cfg.Denylist) > 0 {
		extractor.Denylist = cfg.Denylist
	}
	return extractor
}

// extractCandidates runs the header state machine over the rows. A header-like
// row never becomes data: when its columns bind it re-points the indices for
// the rows below, and when they do not the previous header stays active.
func extractCandidates(rows []sheet.Row, extractor *sheet.Extractor) []sheet.Candidate {
	var (
		header     *sheet.Header
		candidates []sheet.Candidate
	)
	for _, row := range rows {
		if row.IsEmpty() {
			continue
		}
		if sheet.IsHeaderRow(row) {
			if bound, ok := sheet.BindColumns(row); ok {
				h := bound
				header = &h
			}
			continue
		}
		if candidate, ok := extractor.Extract(row, header); ok {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

// UniqueCandidates extracts product lines from every workbook and keeps the
// first candidate seen per normalized description. Unreadable workbooks are
// logged and skipped.
func UniqueCandidates(paths []string, extractor *sheet.Extractor, logger zerolog.Logger) []sheet.Candidate {
	seen := make(map[string]struct{})
	var unique []sheet.Candidate
	for _, path := range paths {
		rows, err := sheet.Open(path)
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Msg("workbook read failed, file skipped")
			continue
		}
		for _, candidate := range extractCandidates(rows, extractor) {
			key := catalog.Normalize(candidate.Description)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, candidate)
		}
	}
	return unique
}

// Run imports every workbook in paths. A failure to load the catalog
// snapshot aborts the run; every later failure is scoped to one customer
// and the run continues with the next file.
func (s *Service) Run(ctx context.Context, paths []string) (*Result, error) {
	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}
	index := catalog.NewIndex(products, s.threshold)
	s.log.Info().Int("products", index.Len()).Msg("catalog snapshot loaded")

	result := &Result{Summaries: make([]Summary, 0, len(paths))}
	for _, path := range paths {
		if s.skipMarker != "" && strings.Contains(filepath.Base(path), s.skipMarker) {
			s.log.Info().Str("file", path).Msg("template workbook skipped")
			result.FilesSkipped++
			continue
		}

		summary := s.importFile(ctx, path, index, result)
		result.FilesProcessed++
		result.Matched += summary.Matched
		result.Created += summary.Created
		result.Skipped += summary.Skipped
		if summary.Failed {
			result.CustomersFailed++
		}
		result.Summaries = append(result.Summaries, summary)
	}

	return result, nil
}

func (s *Service) importFile(ctx context.Context, path string, index *catalog.Index, result *Result) Summary {
	cust := customer.FromFilename(path, s.filePrefix)
	summary := Summary{File: path, Customer: cust.Name}
	logger := s.log.With().Str("file", filepath.Base(path)).Str("customer", cust.Name).Logger()

	customerID, err := s.resolveCustomer(ctx, cust)
	if err != nil {
		logger.Error().Err(err).Msg("customer resolution failed")
		summary.Failed = true
		summary.Reason = err.Error()
		return summary
	}

	rows, err := sheet.Open(path)
	if err != nil {
		logger.Error().Err(err).Msg("workbook read failed")
		summary.Failed = true
		summary.Reason = err.Error()
		return summary
	}
	result.RowsRead += len(rows)

	batch := customer.NewBatch()
	for _, candidate := range extractCandidates(rows, s.extractor) {
		productID, matched := index.Match(candidate.Description)
		if matched {
			summary.Matched++
		} else {
			name := strings.TrimSpace(candidate.Description)
			productID, err = s.store.CreateProduct(ctx, name)
			if err != nil {
				logger.Warn().Err(err).Str("description", name).Msg("product creation failed, row skipped")
				summary.Skipped++
				continue
			}
			index.Add(catalog.Product{ID: productID, Name: name})
			logger.Info().Int64("product_id", productID).Str("name", name).Msg("product created")
			summary.Created++
		}

		association := catalog.Association{
			CustomerID:  customerID,
			ProductID:   productID,
			CustomPrice: candidate.Price,
		}
		if candidate.Brand != "" {
			brand := candidate.Brand
			association.CustomBrand = &brand
		}
		batch.Add(association)
	}

	if batch.Len() == 0 {
		logger.Warn().Int("skipped", summary.Skipped).Msg("no product lines extracted")
		return summary
	}

	if err := s.store.ReplaceCustomerProducts(ctx, customerID, batch.Associations()); err != nil {
		logger.Error().Err(err).Msg("association flush failed")
		summary.Failed = true
		summary.Reason = err.Error()
		return summary
	}

	summary.Linked = batch.Len()
	logger.Info().
		Int("linked", summary.Linked).
		Int("matched", summary.Matched).
		Int("created", summary.Created).
		Int("skipped", summary.Skipped).
		Msg("customer import complete")
	return summary
}

func (s *Service) resolveCustomer(ctx context.Context, cust customer.Customer) (int64, error) {
	id, found, err := s.store.FindCustomer(ctx, cust.Name)
	if err != nil {
		return 0, fmt.Errorf("find customer %q: %w", cust.Name, err)
	}
	if found {
		return id, nil
	}

	id, err = s.store.CreateCustomer(ctx, cust.Name, cust.Contract)
	if err != nil {
		return 0, fmt.Errorf("create customer %q: %w", cust.Name, err)
	}
	return id, nil
}

package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/areteselect/backend/internal/domain"
)

// CaseService runs the case-library pipeline: fetch all tabs, normalize
// cells, resolve aliased columns and evaluate the match predicate. Every
// call re-fetches the whole dataset; nothing is cached between requests.
type CaseService struct {
	source domain.SheetSource
}

// NewCaseService creates a new case service backed by the given source
func NewCaseService(source domain.SheetSource) *CaseService {
	return &CaseService{source: source}
}

// Categories collects the distinct Type values across all tabs, in
// first-seen order. A row is assumed to have at most one Type column, so
// header scanning stops at the first alias match. Fetch failures
// propagate to the caller unchanged.
func (s *CaseService) Categories(ctx context.Context) ([]string, error) {
	sheets, err := s.source.FetchSheets(ctx)
	if err != nil {
		return nil, err
	}

	var categories []string
	seen := make(map[string]bool)
	for _, sheet := range sheets {
		for _, row := range sheet.Rows {
			for _, header := range row.Headers() {
				if !IsTypeColumn(header) {
					continue
				}
				value := CleanCell(row.Get(header))
				if value != "" && !seen[value] {
					seen[value] = true
					categories = append(categories, value)
				}
				break
			}
		}
	}
	return categories, nil
}

// Search scans every row of every tab and keeps the rows matching the
// keyword. A row is kept when the keyword equals a known category and the
// row's Type equals it exactly, or when the lower-cased keyword is a
// substring of any field value. Rows missing Title or Video url after
// cleaning are discarded. The keyword must be non-empty; the caller skips
// the search entirely for an empty keyword.
func (s *CaseService) Search(ctx context.Context, keyword string, categories []string) (*domain.SearchResult, error) {
	sheets, err := s.source.FetchSheets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}

	trimmed := strings.TrimSpace(keyword)
	isCategory := containsString(categories, trimmed)
	kwLower := strings.ToLower(trimmed)

	result := &domain.SearchResult{}
	seenFields := make(map[string]bool)

	for _, sheet := range sheets {
		sheetTitle := CleanCell(sheet.Title)
		for _, row := range sheet.Rows {
			if isBlankRow(row) {
				continue
			}

			// Cleaned working copy; the raw row stays untouched.
			cp := domain.NewRow()
			for _, header := range row.Headers() {
				cp.Set(header, CleanCell(row.Get(header)))
			}

			// Title and Video url are required, by exact header name.
			if cp.Get(domain.FieldTitle) == "" || cp.Get(domain.FieldVideoURL) == "" {
				continue
			}

			// Canonical Type: first alias header wins.
			typeValue := ""
			hasType := false
			for _, header := range cp.Headers() {
				if IsTypeColumn(header) {
					typeValue = cp.Get(header)
					hasType = true
					break
				}
			}
			if hasType {
				cp.Set(domain.FieldType, typeValue)
			}

			// Canonical Company: first alias header, or empty.
			companyValue := ""
			for _, header := range cp.Headers() {
				if IsCompanyColumn(header) {
					companyValue = cp.Get(header)
					break
				}
			}
			cp.Set(domain.FieldCompany, companyValue)

			cp.Set(domain.FieldSourceSheet, sheetTitle)

			matchCategory := isCategory && hasType && typeValue == trimmed

			// Keyword: Company, Title, or any other field, case-insensitive.
			// The Company/Title checks are subsets of the any-field scan but
			// are kept as the cheap fast path.
			matchKeyword := false
			if kwLower != "" {
				if strings.Contains(strings.ToLower(companyValue), kwLower) ||
					strings.Contains(strings.ToLower(cp.Get(domain.FieldTitle)), kwLower) {
					matchKeyword = true
				} else {
					for _, header := range cp.Headers() {
						if strings.Contains(strings.ToLower(cp.Get(header)), kwLower) {
							matchKeyword = true
							break
						}
					}
				}
			}

			if !matchCategory && !matchKeyword {
				continue
			}

			// Exactly one Type field survives canonicalization.
			for _, header := range cp.Headers() {
				if IsTypeColumn(header) && header != domain.FieldType {
					cp.Delete(header)
				}
			}

			result.Rows = append(result.Rows, cp)
			for _, header := range cp.Headers() {
				if !seenFields[header] {
					seenFields[header] = true
					result.Fields = append(result.Fields, header)
				}
			}
		}
	}

	log.Printf("[SEARCH] keyword=%q matched=%d rows across %d tabs", trimmed, len(result.Rows), len(sheets))
	return result, nil
}

// Stats reports per-tab row counts and the distinct headers observed
// across all tabs, for diagnosing schema drift via the debug endpoint.
func (s *CaseService) Stats(ctx context.Context) ([]domain.SheetStats, []string, error) {
	sheets, err := s.source.FetchSheets(ctx)
	if err != nil {
		return nil, nil, err
	}

	stats := make([]domain.SheetStats, 0, len(sheets))
	var fields []string
	seen := make(map[string]bool)
	for _, sheet := range sheets {
		stats = append(stats, domain.SheetStats{
			Title:    CleanCell(sheet.Title),
			RowCount: len(sheet.Rows),
		})
		for _, row := range sheet.Rows {
			for _, header := range row.Headers() {
				if !seen[header] {
					seen[header] = true
					fields = append(fields, header)
				}
			}
		}
	}
	return stats, fields, nil
}

// isBlankRow reports whether every cell of the row cleans to empty
func isBlankRow(row domain.Row) bool {
	for _, header := range row.Headers() {
		if CleanCell(row.Get(header)) != "" {
			return false
		}
	}
	return true
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

package usecase

import (
	"strings"

	"github.com/areteselect/backend/internal/domain"
)

// preferredColumns is the fixed display order for the canonical fields.
// Fields absent from the result set are skipped.
var preferredColumns = []string{
	domain.FieldType,
	domain.FieldCompany,
	domain.FieldTitle,
	domain.FieldVideoURL,
	domain.FieldClassification,
	domain.FieldSourceSheet,
}

// PlanColumns produces the display order for result columns: preferred
// columns first, then the remaining fields in first-seen order. Type-alias
// headers other than the canonical Type never appear, even if present in
// the raw fields list.
func PlanColumns(fields []string) []string {
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f] = true
	}

	order := make([]string, 0, len(fields))
	added := make(map[string]bool, len(fields))
	for _, name := range preferredColumns {
		if present[name] && !added[name] {
			order = append(order, name)
			added[name] = true
		}
	}
	for _, f := range fields {
		if !added[f] && !IsTypeColumn(f) {
			order = append(order, f)
			added[f] = true
		}
	}
	return order
}

// CompanyOptions returns the distinct non-empty Company values among the
// rows, in first-seen order. Used to populate the company filter dropdown.
func CompanyOptions(rows []domain.Row) []string {
	var companies []string
	seen := make(map[string]bool)
	for _, row := range rows {
		company := strings.TrimSpace(row.Get(domain.FieldCompany))
		if company != "" && !seen[company] {
			seen[company] = true
			companies = append(companies, company)
		}
	}
	return companies
}

// FilterByCompany reduces rows to those whose Company field equals the
// given value exactly.
func FilterByCompany(rows []domain.Row, company string) []domain.Row {
	var filtered []domain.Row
	for _, row := range rows {
		if strings.TrimSpace(row.Get(domain.FieldCompany)) == company {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

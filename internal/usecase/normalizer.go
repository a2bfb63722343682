package usecase

import "strings"

// typeAliases are the header spellings that denote the Type column.
// The live spreadsheet contains several misspellings of "type", so the
// alias set is enumerated explicitly rather than fuzzy-matched.
var typeAliases = map[string]bool{
	"type": true,
	"tpye": true,
	"typ":  true,
	"tpy":  true,
	"tpey": true,
}

// companyAliases are the header spellings that denote the Company column,
// including the traditional-Chinese names used on some tabs.
var companyAliases = map[string]bool{
	"company": true,
	"brand":   true,
	"品牌":      true,
	"公司":      true,
}

// canonicalHeader lower-cases a header and strips all spaces, so that
// " Type " and "TYPE" classify the same way.
func canonicalHeader(header string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(header)), " ", "")
}

// IsTypeColumn reports whether the header denotes the Type field.
// Returns false for an empty header.
func IsTypeColumn(header string) bool {
	return typeAliases[canonicalHeader(header)]
}

// IsCompanyColumn reports whether the header denotes the Company field.
// Returns false for an empty header.
func IsCompanyColumn(header string) bool {
	return companyAliases[canonicalHeader(header)]
}

// CleanCell removes invisible characters from a cell value: ASCII control
// characters (including \n and \r), zero-width space/non-joiner/joiner,
// line and paragraph separators, non-breaking space and ideographic space.
// The result is trimmed of surrounding whitespace. Pure and total.
func CleanCell(value string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r <= 0x1F:
			return -1
		case r >= 0x7F && r <= 0x9F:
			return -1
		case r >= 0x200B && r <= 0x200D:
			return -1
		case r == 0x2028 || r == 0x2029:
			return -1
		case r == 0x00A0 || r == 0x3000:
			return -1
		}
		return r
	}, value)
	return strings.TrimSpace(cleaned)
}

package domain

// Canonical field names guaranteed on every normalized result row.
// 分類 and 來源工作表 are the literal header names used by the case
// library spreadsheet (classification and source worksheet).
const (
	FieldType           = "Type"
	FieldCompany        = "Company"
	FieldTitle          = "Title"
	FieldVideoURL       = "Video url"
	FieldClassification = "分類"
	FieldSourceSheet    = "來源工作表"
)

// Sheet is one named tab of the remote spreadsheet. It is fetched fresh
// on every request and discarded after the response.
type Sheet struct {
	Title string
	Rows  []Row
}

// Row is an ordered mapping from column header to raw cell value. Source
// sheets define arbitrary headers per tab, so there is no fixed record
// type; the header slice preserves declaration order, which drives both
// alias scanning and the first-seen field order of search results.
type Row struct {
	headers []string
	values  map[string]string
}

// NewRow creates an empty row.
func NewRow() Row {
	return Row{values: make(map[string]string)}
}

// Set stores a value under the given header. A header not seen before is
// appended to the header order, mirroring insertion-ordered dict behavior.
func (r *Row) Set(header, value string) {
	if r.values == nil {
		r.values = make(map[string]string)
	}
	if _, ok := r.values[header]; !ok {
		r.headers = append(r.headers, header)
	}
	r.values[header] = value
}

// Get returns the value for the header, or "" when absent.
func (r Row) Get(header string) string {
	return r.values[header]
}

// Has reports whether the header is present.
func (r Row) Has(header string) bool {
	_, ok := r.values[header]
	return ok
}

// Delete removes the header and its value.
func (r *Row) Delete(header string) {
	if _, ok := r.values[header]; !ok {
		return
	}
	delete(r.values, header)
	for i, h := range r.headers {
		if h == header {
			r.headers = append(r.headers[:i], r.headers[i+1:]...)
			break
		}
	}
}

// Headers returns the headers in declaration order. The returned slice is
// a copy, so callers may delete headers while iterating it.
func (r Row) Headers() []string {
	out := make([]string, len(r.headers))
	copy(out, r.headers)
	return out
}

// Len returns the number of headers in the row.
func (r Row) Len() int {
	return len(r.headers)
}

// Map returns the row as a plain map, for JSON responses.
func (r Row) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// SearchResult holds the rows that matched a query, in source order, plus
// the distinct field names observed across them in first-seen order.
type SearchResult struct {
	Rows   []Row
	Fields []string
}

// SheetStats describes one tab for the debug endpoint.
type SheetStats struct {
	Title    string `json:"title"`
	RowCount int    `json:"rowCount"`
}

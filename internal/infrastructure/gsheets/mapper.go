package gsheets

import (
	"fmt"
	"strconv"

	"github.com/areteselect/backend/internal/domain"
)

// mapValueRange converts one tab's raw cell grid into a Sheet. The first
// row defines the headers; data rows shorter than the header row are
// padded with empty values, and columns with a blank header are skipped.
func mapValueRange(title string, grid [][]interface{}) domain.Sheet {
	sheet := domain.Sheet{Title: title}
	if len(grid) == 0 {
		return sheet
	}

	headers := make([]string, len(grid[0]))
	for i, cell := range grid[0] {
		headers[i] = cellString(cell)
	}

	for _, cells := range grid[1:] {
		row := domain.NewRow()
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(cells) {
				value = cellString(cells[i])
			}
			row.Set(header, value)
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// cellString converts a raw API cell value to its string form, nil to "".
// With the default FORMATTED_VALUE rendering the API returns strings, but
// numbers and booleans are handled for robustness.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

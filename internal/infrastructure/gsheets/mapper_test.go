package gsheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapValueRange(t *testing.T) {
	t.Run("maps headers to row values", func(t *testing.T) {
		grid := [][]interface{}{
			{"Type", "Title", "Video url"},
			{"Demo", "Intro", "http://v/1"},
			{"Webinar", "Launch", "http://v/2"},
		}

		sheet := mapValueRange("Cases", grid)

		assert.Equal(t, "Cases", sheet.Title)
		require.Len(t, sheet.Rows, 2)
		assert.Equal(t, []string{"Type", "Title", "Video url"}, sheet.Rows[0].Headers())
		assert.Equal(t, "Demo", sheet.Rows[0].Get("Type"))
		assert.Equal(t, "Webinar", sheet.Rows[1].Get("Type"))
	})

	t.Run("pads short rows with empty values", func(t *testing.T) {
		grid := [][]interface{}{
			{"Type", "Title"},
			{"Demo"},
		}

		sheet := mapValueRange("Cases", grid)

		require.Len(t, sheet.Rows, 1)
		assert.True(t, sheet.Rows[0].Has("Title"))
		assert.Equal(t, "", sheet.Rows[0].Get("Title"))
	})

	t.Run("skips blank header columns", func(t *testing.T) {
		grid := [][]interface{}{
			{"Type", "", "Title"},
			{"Demo", "stray", "Intro"},
		}

		sheet := mapValueRange("Cases", grid)

		require.Len(t, sheet.Rows, 1)
		assert.Equal(t, []string{"Type", "Title"}, sheet.Rows[0].Headers())
	})

	t.Run("empty grid gives empty sheet", func(t *testing.T) {
		sheet := mapValueRange("Empty", nil)

		assert.Equal(t, "Empty", sheet.Title)
		assert.Empty(t, sheet.Rows)
	})

	t.Run("header-only grid gives no rows", func(t *testing.T) {
		sheet := mapValueRange("Cases", [][]interface{}{{"Type", "Title"}})

		assert.Empty(t, sheet.Rows)
	})
}

func TestCellString(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "Acme", "Acme"},
		{"integer-valued float", float64(42), "42"},
		{"fractional float", 12.5, "12.5"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cellString(tt.input))
		})
	}
}

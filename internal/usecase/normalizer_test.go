package usecase

import "testing"

func TestCleanCell(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain value unchanged",
			input: "Webinar",
			want:  "Webinar",
		},
		{
			name:  "trims surrounding whitespace",
			input: "  Acme  ",
			want:  "Acme",
		},
		{
			name:  "removes newlines and carriage returns",
			input: "line\r\nbroken\nvalue",
			want:  "linebrokenvalue",
		},
		{
			name:  "removes zero-width characters",
			input: "Ac\u200bme\u200c Inc\u200d",
			want:  "Acme Inc",
		},
		{
			name:  "removes non-breaking space",
			input: "\u00a0Acme\u00a0Inc\u00a0",
			want:  "AcmeInc",
		},
		{
			name:  "removes ideographic space",
			input: "亞瑞特　案例",
			want:  "亞瑞特案例",
		},
		{
			name:  "removes line and paragraph separators",
			input: "a\u2028b\u2029c",
			want:  "abc",
		},
		{
			name:  "removes ASCII control characters",
			input: "\x00\x01abc\x1f\x7f",
			want:  "abc",
		},
		{
			name:  "removes C1 control characters",
			input: "\u0080abc\u009f",
			want:  "abc",
		},
		{
			name:  "only invisible characters becomes empty",
			input: "\u200b\u200c\u200d\u00a0　\r\n\x1f \u2028",
			want:  "",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "interior spaces preserved",
			input: "Case Study",
			want:  "Case Study",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CleanCell(tc.input)
			if got != tc.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestCleanCell_Idempotent(t *testing.T) {
	inputs := []string{"Webinar", "  pad\u200bded  ", "亞瑞特　案例", "http://example.com\r\n"}
	for _, input := range inputs {
		once := CleanCell(input)
		twice := CleanCell(once)
		if once != twice {
			t.Errorf("CleanCell not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestIsTypeColumn(t *testing.T) {
	trueCases := []string{"Type", "TYPE", " type ", "Tpye", "TPY", "typ", "tpey", "t y p e"}
	for _, header := range trueCases {
		if !IsTypeColumn(header) {
			t.Errorf("IsTypeColumn(%q) = false, want true", header)
		}
	}

	falseCases := []string{"Category", "Name", "", "Typer", "Company"}
	for _, header := range falseCases {
		if IsTypeColumn(header) {
			t.Errorf("IsTypeColumn(%q) = true, want false", header)
		}
	}
}

func TestIsCompanyColumn(t *testing.T) {
	trueCases := []string{"Company", "COMPANY", " brand ", "品牌", "公司", "Brand"}
	for _, header := range trueCases {
		if !IsCompanyColumn(header) {
			t.Errorf("IsCompanyColumn(%q) = false, want true", header)
		}
	}

	falseCases := []string{"Corp", "", "Type", "companies"}
	for _, header := range falseCases {
		if IsCompanyColumn(header) {
			t.Errorf("IsCompanyColumn(%q) = true, want false", header)
		}
	}
}

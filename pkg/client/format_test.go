package client

import "testing"

func TestFormatCurrencyShorthand(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := []struct {
		name  string
		value *string
		want  string
	}{
		{"nil", nil, "N/A"},
		{"empty", str(""), "N/A"},
		{"not a number", str("lots"), "N/A"},
		{"billions", str("1200000000"), "$1.2B"},
		{"millions", str("165000000"), "$165M"},
		{"thousands", str("900000"), "$900K"},
		{"rounded thousands", str("2500.75"), "$3K"},
		{"small", str("500"), "$500"},
		{"small decimal", str("999.5"), "$999.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCurrencyShorthand(tc.value); got != tc.want {
				t.Errorf("FormatCurrencyShorthand(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

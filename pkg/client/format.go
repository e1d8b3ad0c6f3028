package client

import (
	"fmt"
	"strconv"
)

// FormatCurrencyShorthand renders a decimal budget string the way the
// entry table shows it: $1.2B, $165M, $900K, or the plain amount.
// Missing or unparsable values render as N/A.
func FormatCurrencyShorthand(value *string) string {
	if value == nil || *value == "" {
		return "N/A"
	}
	num, err := strconv.ParseFloat(*value, 64)
	if err != nil {
		return "N/A"
	}

	switch {
	case num >= 1_000_000_000:
		return fmt.Sprintf("$%.1fB", num/1_000_000_000)
	case num >= 1_000_000:
		return fmt.Sprintf("$%.0fM", num/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("$%.0fK", num/1_000)
	}
	return "$" + strconv.FormatFloat(num, 'f', -1, 64)
}

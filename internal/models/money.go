package models

import "strconv"

// MoneyString renders a monetary value in the canonical fixed-point form
// used for storage and comparison (two fraction digits, no exponent).
// Filter bounds must pass through this before being compared against stored
// values, otherwise float formatting drift breaks range boundaries.
func MoneyString(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

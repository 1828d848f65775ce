package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseQuantity converts a quantity string to float64. The second return is
// false unless the value is a finite number greater than zero.
func ParseQuantity(quantityStr string) (float64, bool) {
	clean := strings.TrimSpace(quantityStr)
	if clean == "" {
		return 0, false
	}

	// Plain decimals only; ParseFloat would also take hex floats like 0x1p-2.
	if digits := strings.ToLower(strings.TrimLeft(clean, "+-")); strings.HasPrefix(digits, "0x") {
		return 0, false
	}

	qty, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(qty) || math.IsInf(qty, 0) || qty <= 0 {
		return 0, false
	}

	return qty, true
}

// FormatQuantity renders "<quantity> <unit>", or an em-dash when either part is missing.
func FormatQuantity(quantity, unit string) string {
	quantity = strings.TrimSpace(quantity)
	unit = strings.TrimSpace(unit)
	if quantity == "" || unit == "" {
		return "—"
	}
	return quantity + " " + unit
}

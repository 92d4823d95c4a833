package utils

import (
	"strconv"
	"strings"
)

// FormatPrice renders a catalog amount with thousands separators, "Rs. 2,500".
func FormatPrice(amount int64) string {
	neg := amount < 0
	magnitude := uint64(amount)
	if neg {
		// two's complement negation in uint64 also covers math.MinInt64
		magnitude = -magnitude
	}

	digits := strconv.FormatUint(magnitude, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if neg {
		return "-Rs. " + b.String()
	}
	return "Rs. " + b.String()
}

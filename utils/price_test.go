package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := map[int64]string{
		0:             "Rs. 0",
		999:           "Rs. 999",
		2500:          "Rs. 2,500",
		7500:          "Rs. 7,500",
		1234567:       "Rs. 1,234,567",
		-2500:         "-Rs. 2,500",
		math.MaxInt64: "Rs. 9,223,372,036,854,775,807",
		math.MinInt64: "-Rs. 9,223,372,036,854,775,808",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatPrice(in))
	}
}

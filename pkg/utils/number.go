package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatAmount formata um valor monetário de forma estável e independente de
// locale, para uso em exportações.
func FormatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

package utils

import "math"

// RoundWithOneDecimalPlace arredonda para uma casa decimal, usado na taxa
// de engajamento das campanhas
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

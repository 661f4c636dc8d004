package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide num por den substituindo denominador zero por 0.
// Regra do produto: razões com base zero valem 0, nunca NaN ou infinito.
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

package service

import "github.com/shopspring/decimal"

// roundTo2Decimals rounds half away from zero on the decimal value, not the binary one.
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

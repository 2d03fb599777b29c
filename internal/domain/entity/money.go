package entity

import "github.com/shopspring/decimal"

// moneyPlaces is the precision every stored amount is rounded to.
const moneyPlaces = 2

// Money rounds a decimal amount into the float representation stored on entities.
func Money(d decimal.Decimal) float64 {
	return d.Round(moneyPlaces).InexactFloat64()
}

// SumMoney adds amounts without accumulating binary floating point error.
func SumMoney(amounts ...float64) float64 {
	sum := decimal.Zero
	for _, amount := range amounts {
		sum = sum.Add(decimal.NewFromFloat(amount))
	}

	return Money(sum)
}

// ConvertMoney divides an amount by a fixed exchange rate.
func ConvertMoney(amount float64, rate decimal.Decimal) float64 {
	if rate.IsZero() {
		return Money(decimal.NewFromFloat(amount))
	}

	return Money(decimal.NewFromFloat(amount).Div(rate))
}

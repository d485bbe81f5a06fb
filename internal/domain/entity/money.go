package entity

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places stored for every amount.
const MoneyPlaces = 2

// FitsMoneyScale reports whether amount has no digits beyond MoneyPlaces.
// Trailing zeros do not count, so 12.500 fits.
func FitsMoneyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MoneyPlaces))
}

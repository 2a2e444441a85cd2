// Package dto holds the transfer objects exchanged with API clients and the
// conversions between them and the stored entities.
package dto

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxPrice is the exclusive upper bound of a price; prices are stored as
// decimal(10,2).
var MaxPrice = decimal.New(1, 8)

const priceScale = 2

var (
	errPriceNotPositive = errors.New("price must be positive")
	errPriceTooLarge    = errors.New("price must be less than 100000000")
	errPriceScale       = errors.New("price must have at most 2 decimal places")
)

// notBlank rejects empty and whitespace-only strings.
func notBlank(message string) func(value interface{}) error {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return errPriceNotPositive
	}
	return nil
}

func priceInRange(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	if d.GreaterThanOrEqual(MaxPrice) {
		return errPriceTooLarge
	}
	return nil
}

// priceCents rejects digits beyond the cent. Trailing zeros are fine.
func priceCents(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	if d.Exponent() < -priceScale && !d.Equal(d.Truncate(priceScale)) {
		return errPriceScale
	}
	return nil
}

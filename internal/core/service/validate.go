package service

import (
	"github.com/shopspring/decimal"

	"github.com/skustore/skustore/internal/core/domain"
)

func validateSKU(sku string) error {
	if sku == "" {
		return domain.ErrEmptySKU
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidPrice
	}
	return nil
}

func validateNewItem(item domain.Item) error {
	if err := validateSKU(item.SKU); err != nil {
		return err
	}
	if item.Stock == nil {
		return domain.ErrMissingStock
	}
	return validatePrice(item.Stock.Price)
}

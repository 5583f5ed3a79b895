package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/skustore/skustore/internal/core/domain"
	"github.com/skustore/skustore/internal/port"
)

// InventoryService validates requests and delegates to the repository.
// Validation always checks the identifier before the payload, so a
// request that is broken in both ways reports the identifier problem.
type InventoryService struct {
	repo port.InventoryRepository
}

func NewInventoryService(repo port.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) Add(ctx context.Context, item domain.Item) error {
	if err := validateNewItem(item); err != nil {
		return err
	}
	return s.repo.Add(ctx, item)
}

func (s *InventoryService) Remove(ctx context.Context, sku string) (bool, error) {
	if err := validateSKU(sku); err != nil {
		return false, err
	}
	return s.repo.Remove(ctx, sku)
}

func (s *InventoryService) Get(ctx context.Context, sku string) (domain.Item, error) {
	if err := validateSKU(sku); err != nil {
		return domain.Item{}, err
	}
	return s.repo.Get(ctx, sku)
}

func (s *InventoryService) AdjustQuantity(ctx context.Context, sku string, change int32) (domain.Stock, error) {
	if err := validateSKU(sku); err != nil {
		return domain.Stock{}, err
	}
	if change == 0 {
		return domain.Stock{}, domain.ErrZeroQuantityDelta
	}
	return s.repo.AdjustQuantity(ctx, sku, change)
}

func (s *InventoryService) SetPrice(ctx context.Context, sku string, price decimal.Decimal) (domain.Stock, error) {
	if err := validateSKU(sku); err != nil {
		return domain.Stock{}, err
	}
	if err := validatePrice(price); err != nil {
		return domain.Stock{}, err
	}
	return s.repo.SetPrice(ctx, sku, price)
}

func (s *InventoryService) Watch(ctx context.Context, sku string) (port.Subscription, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	return s.repo.Watch(ctx, sku)
}

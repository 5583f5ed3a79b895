package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/skustore/skustore/internal/core/domain"
)

type InventoryRepository interface {
	// Add inserts a new item, failing if the SKU is already present
	Add(ctx context.Context, item domain.Item) error

	// Remove deletes an item, returns false if the SKU was absent
	Remove(ctx context.Context, sku string) (bool, error)

	// Get returns a snapshot of the item for the given SKU
	Get(ctx context.Context, sku string) (domain.Item, error)

	// AdjustQuantity applies a signed quantity change and returns the resulting stock
	AdjustQuantity(ctx context.Context, sku string, change int32) (domain.Stock, error)

	// SetPrice replaces the unit price and returns the resulting stock
	SetPrice(ctx context.Context, sku string, price decimal.Decimal) (domain.Stock, error)

	// Watch subscribes to changes of a single item
	Watch(ctx context.Context, sku string) (Subscription, error)
}

// Subscription delivers item change events until closed.
type Subscription interface {
	// Events yields change events in mutation order; the channel closes
	// after a deleted event or when the subscription shuts down
	Events() <-chan domain.WatchEvent

	// Close detaches the subscription and releases its resources
	Close()
}

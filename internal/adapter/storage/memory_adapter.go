package storage

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/skustore/skustore/internal/core/domain"
	"github.com/skustore/skustore/internal/port"
)

const (
	DefaultShardCount  = 32
	DefaultWatchBuffer = 16
)

type shard struct {
	mu       sync.RWMutex
	items    map[string]domain.Item
	watchers map[string][]*watcher
}

// MemoryAdapter is the in-process inventory store. Items are spread
// over a fixed set of shards so unrelated SKUs never contend on the
// same lock. Watch events are published while the shard lock is held,
// which fixes their order to the order of the mutations themselves.
type MemoryAdapter struct {
	shards      []*shard
	watchBuffer int
	logger      zerolog.Logger
}

func NewMemoryAdapter(shardCount, watchBuffer int, logger zerolog.Logger) *MemoryAdapter {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	if watchBuffer <= 0 {
		watchBuffer = DefaultWatchBuffer
	}

	shards := make([]*shard, shardCount)
	for i := range shards {
		shards[i] = &shard{
			items:    make(map[string]domain.Item),
			watchers: make(map[string][]*watcher),
		}
	}

	return &MemoryAdapter{
		shards:      shards,
		watchBuffer: watchBuffer,
		logger:      logger,
	}
}

func (m *MemoryAdapter) shardFor(sku string) *shard {
	h := fnv.New32a()
	h.Write([]byte(sku))
	return m.shards[h.Sum32()%uint32(len(m.shards))]
}

func (m *MemoryAdapter) Add(ctx context.Context, item domain.Item) error {
	sh := m.shardFor(item.SKU)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.items[item.SKU]; ok {
		return domain.ErrDuplicateItem
	}

	stored := item.Clone()
	sh.items[item.SKU] = stored
	sh.publish(item.SKU, domain.WatchEvent{Item: stored.Clone()})

	return nil
}

func (m *MemoryAdapter) Remove(ctx context.Context, sku string) (bool, error) {
	sh := m.shardFor(sku)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	item, ok := sh.items[sku]
	if !ok {
		return false, nil
	}

	delete(sh.items, sku)
	sh.publish(sku, domain.WatchEvent{Item: item.Clone(), Deleted: true})
	delete(sh.watchers, sku)

	return true, nil
}

func (m *MemoryAdapter) Get(ctx context.Context, sku string) (domain.Item, error) {
	sh := m.shardFor(sku)

	sh.mu.RLock()
	defer sh.mu.RUnlock()

	item, ok := sh.items[sku]
	if !ok {
		return domain.Item{}, domain.ErrItemNotFound
	}

	return item.Clone(), nil
}

func (m *MemoryAdapter) AdjustQuantity(ctx context.Context, sku string, change int32) (domain.Stock, error) {
	sh := m.shardFor(sku)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	item, ok := sh.items[sku]
	if !ok {
		return domain.Stock{}, domain.ErrItemNotFound
	}
	if item.Stock == nil {
		return domain.Stock{}, domain.ErrCorruptStock
	}

	if change < 0 {
		// int32 min value would overflow a plain int32 negation
		dec := uint32(-int64(change))
		if dec > item.Stock.Quantity {
			return domain.Stock{}, domain.ErrInsufficientStock
		}
		item.Stock.Quantity -= dec
	} else {
		item.Stock.Quantity += uint32(change)
	}

	sh.items[sku] = item
	sh.publish(sku, domain.WatchEvent{Item: item.Clone()})

	return *item.Stock, nil
}

func (m *MemoryAdapter) SetPrice(ctx context.Context, sku string, price decimal.Decimal) (domain.Stock, error) {
	sh := m.shardFor(sku)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	item, ok := sh.items[sku]
	if !ok {
		return domain.Stock{}, domain.ErrItemNotFound
	}
	if item.Stock == nil {
		return domain.Stock{}, domain.ErrCorruptStock
	}

	if price.LessThanOrEqual(decimal.Zero) {
		return domain.Stock{}, domain.ErrInvalidPrice
	}
	if item.Stock.Price.Equal(price) {
		return domain.Stock{}, domain.ErrPriceUnchanged
	}

	item.Stock.Price = price
	sh.items[sku] = item
	sh.publish(sku, domain.WatchEvent{Item: item.Clone()})

	return *item.Stock, nil
}

func (m *MemoryAdapter) Watch(ctx context.Context, sku string) (port.Subscription, error) {
	sh := m.shardFor(sku)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.items[sku]; !ok {
		return nil, domain.ErrItemNotFound
	}

	w := newWatcher(sku, sh, m.watchBuffer, m.logger)
	sh.watchers[sku] = append(sh.watchers[sku], w)
	go w.run(ctx)

	m.logger.Debug().Str("sku", sku).Str("watcher", w.id).Msg("watch subscription opened")

	return w, nil
}

// publish fans an event out to every watcher of the SKU. The caller
// holds the shard write lock, so events reach each watcher in the
// order the mutations happened.
func (sh *shard) publish(sku string, ev domain.WatchEvent) {
	for _, w := range sh.watchers[sku] {
		w.publish(ev)
	}
}

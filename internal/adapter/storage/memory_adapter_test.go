package storage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/skustore/skustore/internal/core/domain"
	"github.com/skustore/skustore/internal/port"
)

func newTestAdapter() *MemoryAdapter {
	return NewMemoryAdapter(DefaultShardCount, DefaultWatchBuffer, zerolog.Nop())
}

func testItem(sku string, price float64, quantity uint32) domain.Item {
	return domain.Item{
		SKU:   sku,
		Stock: &domain.Stock{Price: decimal.NewFromFloat(price), Quantity: quantity},
	}
}

func recvEvent(t *testing.T, sub port.Subscription) domain.WatchEvent {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if !ok {
			t.Fatal("event channel closed unexpectedly")
		}
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
	return domain.WatchEvent{}
}

func recvClosed(t *testing.T, sub port.Subscription) {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if ok {
			t.Fatalf("expected closed channel, got event %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestAdd_Duplicate(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("first add failed: %v", err)
	}

	err := m.Add(ctx, testItem("SKU-1", 2.99, 5))
	if !errors.Is(err, domain.ErrDuplicateItem) {
		t.Errorf("expected ErrDuplicateItem, got: %v", err)
	}

	item, err := m.Get(ctx, "SKU-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if item.Stock.Quantity != 10 {
		t.Errorf("duplicate add must not change state, quantity = %d", item.Stock.Quantity)
	}
}

func TestAdd_Concurrent(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := m.Add(ctx, testItem("HOT-SKU", 1.99, 10)); err == nil {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 successful add, got %d", successCount.Load())
	}
}

func TestRemove_Idempotent(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	removed, err := m.Remove(ctx, "SKU-1")
	if err != nil || !removed {
		t.Fatalf("expected removed=true, got removed=%v err=%v", removed, err)
	}

	removed, err = m.Remove(ctx, "SKU-1")
	if err != nil || removed {
		t.Fatalf("expected removed=false, got removed=%v err=%v", removed, err)
	}

	if _, err := m.Get(ctx, "SKU-1"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound after remove, got: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	m := newTestAdapter()

	_, err := m.Get(context.Background(), "NOPE")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestGet_SnapshotIsolation(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	name := "widget"
	item := testItem("SKU-1", 1.99, 10)
	item.Info = &domain.Info{Name: &name}
	if err := m.Add(ctx, item); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	snap, err := m.Get(ctx, "SKU-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	snap.Stock.Quantity = 0
	*snap.Info.Name = "tampered"

	fresh, err := m.Get(ctx, "SKU-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fresh.Stock.Quantity != 10 {
		t.Errorf("snapshot mutation leaked into store, quantity = %d", fresh.Stock.Quantity)
	}
	if *fresh.Info.Name != "widget" {
		t.Errorf("snapshot mutation leaked into store, name = %s", *fresh.Info.Name)
	}
}

func TestAdjustQuantity(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	stock, err := m.AdjustQuantity(ctx, "SKU-1", 5)
	if err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	if stock.Quantity != 15 {
		t.Errorf("expected quantity 15, got %d", stock.Quantity)
	}

	stock, err = m.AdjustQuantity(ctx, "SKU-1", -15)
	if err != nil {
		t.Fatalf("decrement to zero failed: %v", err)
	}
	if stock.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", stock.Quantity)
	}

	_, err = m.AdjustQuantity(ctx, "SKU-1", -1)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got: %v", err)
	}

	item, _ := m.Get(ctx, "SKU-1")
	if item.Stock.Quantity != 0 {
		t.Errorf("failed decrement must not change state, quantity = %d", item.Stock.Quantity)
	}

	_, err = m.AdjustQuantity(ctx, "MISSING", 1)
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestAdjustQuantity_Concurrent(t *testing.T) {
	initialStock := uint32(20)
	totalRequests := 50

	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, initialStock)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.AdjustQuantity(ctx, "SKU-1", -1); err == nil {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != int32(initialStock) {
		t.Errorf("expected %d successful decrements, got %d", initialStock, successCount.Load())
	}

	item, _ := m.Get(ctx, "SKU-1")
	if item.Stock.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", item.Stock.Quantity)
	}
}

func TestSetPrice(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	stock, err := m.SetPrice(ctx, "SKU-1", decimal.NewFromFloat(2.50))
	if err != nil {
		t.Fatalf("set price failed: %v", err)
	}
	if !stock.Price.Equal(decimal.NewFromFloat(2.50)) {
		t.Errorf("expected price 2.50, got %s", stock.Price)
	}

	_, err = m.SetPrice(ctx, "SKU-1", decimal.NewFromFloat(2.50))
	if !errors.Is(err, domain.ErrPriceUnchanged) {
		t.Errorf("expected ErrPriceUnchanged, got: %v", err)
	}

	_, err = m.SetPrice(ctx, "SKU-1", decimal.Zero)
	if !errors.Is(err, domain.ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got: %v", err)
	}

	_, err = m.SetPrice(ctx, "MISSING", decimal.NewFromFloat(1.00))
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestWatch_AbsentSKU(t *testing.T) {
	m := newTestAdapter()

	_, err := m.Watch(context.Background(), "MISSING")
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestWatch_DeliversMutations(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	sub, err := m.Watch(ctx, "SKU-1")
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}
	defer sub.Close()

	if _, err := m.AdjustQuantity(ctx, "SKU-1", -3); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}
	ev := recvEvent(t, sub)
	if ev.Deleted || ev.Item.Stock.Quantity != 7 {
		t.Errorf("expected quantity 7, got %+v", ev)
	}

	if _, err := m.SetPrice(ctx, "SKU-1", decimal.NewFromFloat(3.99)); err != nil {
		t.Fatalf("set price failed: %v", err)
	}
	ev = recvEvent(t, sub)
	if !ev.Item.Stock.Price.Equal(decimal.NewFromFloat(3.99)) {
		t.Errorf("expected price 3.99, got %s", ev.Item.Stock.Price)
	}
}

func TestWatch_TerminalOnRemove(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	sub, err := m.Watch(ctx, "SKU-1")
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	if _, err := m.Remove(ctx, "SKU-1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	ev := recvEvent(t, sub)
	if !ev.Deleted {
		t.Fatalf("expected deleted event, got %+v", ev)
	}
	if ev.Item.SKU != "SKU-1" {
		t.Errorf("expected SKU-1 in terminal event, got %s", ev.Item.SKU)
	}

	recvClosed(t, sub)
}

func TestWatch_CloseStopsDelivery(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	sub, err := m.Watch(ctx, "SKU-1")
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	sub.Close()
	recvClosed(t, sub)

	// Mutations after close must not block or panic.
	if _, err := m.AdjustQuantity(ctx, "SKU-1", -1); err != nil {
		t.Fatalf("adjust after close failed: %v", err)
	}
}

func TestWatch_ContextCancel(t *testing.T) {
	m := newTestAdapter()

	if err := m.Add(context.Background(), testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := m.Watch(ctx, "SKU-1")
	if err != nil {
		t.Fatalf("watch failed: %v", err)
	}

	cancel()
	recvClosed(t, sub)
}

func TestWatch_MultipleSubscribers(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	if err := m.Add(ctx, testItem("SKU-1", 1.99, 10)); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	subs := make([]port.Subscription, 3)
	for i := range subs {
		sub, err := m.Watch(ctx, "SKU-1")
		if err != nil {
			t.Fatalf("watch %d failed: %v", i, err)
		}
		defer sub.Close()
		subs[i] = sub
	}

	if _, err := m.AdjustQuantity(ctx, "SKU-1", 5); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	for i, sub := range subs {
		ev := recvEvent(t, sub)
		if ev.Item.Stock.Quantity != 15 {
			t.Errorf("subscriber %d: expected quantity 15, got %d", i, ev.Item.Stock.Quantity)
		}
	}
}

func TestWatcher_CoalescesToLatest(t *testing.T) {
	sh := &shard{
		items:    make(map[string]domain.Item),
		watchers: make(map[string][]*watcher),
	}
	w := newWatcher("SKU-1", sh, DefaultWatchBuffer, zerolog.Nop())

	// No run loop draining, so both publishes land in the mailbox.
	w.publish(domain.WatchEvent{Item: testItem("SKU-1", 1.99, 1)})
	w.publish(domain.WatchEvent{Item: testItem("SKU-1", 1.99, 2)})

	ev, ok := w.take()
	if !ok {
		t.Fatal("expected a pending event")
	}
	if ev.Item.Stock.Quantity != 2 {
		t.Errorf("expected latest event (quantity 2), got %d", ev.Item.Stock.Quantity)
	}

	if _, ok := w.take(); ok {
		t.Error("mailbox should be empty after take")
	}
}

func TestWatcher_TerminalNotOverwritten(t *testing.T) {
	sh := &shard{
		items:    make(map[string]domain.Item),
		watchers: make(map[string][]*watcher),
	}
	w := newWatcher("SKU-1", sh, DefaultWatchBuffer, zerolog.Nop())

	w.publish(domain.WatchEvent{Item: testItem("SKU-1", 1.99, 1), Deleted: true})
	w.publish(domain.WatchEvent{Item: testItem("SKU-1", 1.99, 2)})

	ev, ok := w.take()
	if !ok {
		t.Fatal("expected a pending event")
	}
	if !ev.Deleted {
		t.Error("terminal event must survive later publishes")
	}
}

func TestShardDistribution(t *testing.T) {
	m := newTestAdapter()
	ctx := context.Background()

	touched := make(map[*shard]bool)
	for i := 0; i < 200; i++ {
		sku := fmt.Sprintf("SKU-%d", i)
		if err := m.Add(ctx, testItem(sku, 1.00, 1)); err != nil {
			t.Fatalf("add %s failed: %v", sku, err)
		}
		touched[m.shardFor(sku)] = true
	}

	if len(touched) < 2 {
		t.Errorf("expected keys to spread over shards, touched %d", len(touched))
	}
}

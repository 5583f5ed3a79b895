package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/skustore/skustore/internal/adapter/storage"
	"github.com/skustore/skustore/internal/core/domain"
	"github.com/skustore/skustore/internal/core/service"
)

const (
	sku           = "stress-item"
	initialStock  = 20
	totalRequests = 50
)

func main() {
	ctx := context.Background()

	store := storage.NewMemoryAdapter(storage.DefaultShardCount, storage.DefaultWatchBuffer, zerolog.Nop())
	inventory := service.NewInventoryService(store)

	// Phase 1: concurrent adds of the same SKU, exactly one may win
	var addSuccess atomic.Int32
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := inventory.Add(ctx, domain.Item{
				SKU:   sku,
				Stock: &domain.Stock{Price: decimal.NewFromFloat(1.99), Quantity: initialStock},
			})
			if err == nil {
				addSuccess.Add(1)
			}
		}()
	}
	wg.Wait()
	addElapsed := time.Since(start)

	// Phase 2: concurrent unit decrements, exactly initialStock may win
	var decSuccess atomic.Int32
	var decFail atomic.Int32

	start = time.Now()
	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := inventory.AdjustQuantity(ctx, sku, -1); err == nil {
				decSuccess.Add(1)
			} else {
				decFail.Add(1)
			}
		}()
	}
	wg.Wait()
	decElapsed := time.Since(start)

	item, err := inventory.Get(ctx, sku)
	if err != nil {
		fmt.Printf("FAIL: final get: %v\n", err)
		return
	}

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Concurrent Adds:       %d (%v)\n", totalRequests, addElapsed)
	fmt.Printf("Successful Adds:       %d\n", addSuccess.Load())
	fmt.Printf("Concurrent Decrements: %d (%v)\n", totalRequests, decElapsed)
	fmt.Printf("Successful Decrements: %d\n", decSuccess.Load())
	fmt.Printf("Failed Decrements:     %d\n", decFail.Load())
	fmt.Printf("Final Quantity:        %d\n", item.Stock.Quantity)
	fmt.Println("==========================================")

	if addSuccess.Load() == 1 {
		fmt.Println("PASS: exactly one add succeeded")
	} else {
		fmt.Printf("FAIL: expected 1 successful add, got %d\n", addSuccess.Load())
	}

	if decSuccess.Load() == initialStock && item.Stock.Quantity == 0 {
		fmt.Printf("PASS: exactly %d decrements succeeded, stock depleted to 0\n", initialStock)
	} else {
		fmt.Printf("FAIL: expected %d successful decrements and stock 0, got %d and %d\n",
			initialStock, decSuccess.Load(), item.Stock.Quantity)
	}
}

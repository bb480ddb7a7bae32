package main

import (
	"context"
	"fmt"
	"log"

	"github.com/TF2-Price-DB/pricedb-io-utils/pkg/cache"
	"github.com/TF2-Price-DB/pricedb-io-utils/pkg/config"
	"github.com/TF2-Price-DB/pricedb-io-utils/pkg/logging"
)

// The process-wide cache is constructed exactly once here and passed by
// reference; nothing else in the module holds global state.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.Logging.Enabled)
	defer logger.Sync()

	store, err := cache.New[any](
		cache.WithDefaultTTL[any](cfg.Cache.DefaultTTLSeconds),
		cache.WithMaxSize[any](cfg.Cache.MaxSize),
		cache.WithCleanupInterval[any](cfg.Cache.CleanupInterval()),
		cache.WithLogger[any](logger),
	)
	if err != nil {
		log.Fatalf("cache error: %v", err)
	}
	defer store.Destroy()

	key := cache.GenerateKey("prices/latest", map[string]any{"page": 1, "limit": 50})
	value, err := store.GetOrSet(context.Background(), key, func(ctx context.Context) (any, error) {
		// Stand-in for the upstream lookup a real deployment would do here.
		return map[string]any{"items": 50, "page": 1}, nil
	})
	if err != nil {
		log.Fatalf("lookup error: %v", err)
	}
	fmt.Println("cached:", key, "=", value)

	stats := store.Stats()
	fmt.Printf("size=%d maxSize=%d pendingTimers=%d\n", stats.Size, stats.MaxSize, stats.PendingTimers)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stagepass/inventory/app/availability"
	"github.com/stagepass/inventory/app/clock"
	"github.com/stagepass/inventory/app/variations"
	"github.com/stagepass/inventory/models"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}
	channel := os.Getenv("CATALOG_CHANNEL")
	if channel == "" {
		channel = models.DefaultCatalogChannel
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	items := models.NewItemsRepository(db)
	quotas := models.NewQuotasRepository(db)
	checker := availability.NewChecker(quotas, clock.NewSystem())
	cache := variations.NewCache()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener, err := models.NewCatalogListener(dsn, channel, cache, log)
	if err != nil {
		return err
	}
	go func() {
		if err := listener.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("catalog listener stopped", "error", err)
		}
	}()

	if len(os.Args) > 1 {
		itemID, err := strconv.ParseUint(os.Args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("usage: inventory [item-id]")
		}
		return report(ctx, items, checker, cache, uint(itemID))
	}

	<-ctx.Done()
	return nil
}

// report prints the current availability of every sellable combination of
// one item.
func report(ctx context.Context, items *models.ItemsRepository, checker *availability.Checker, cache *variations.Cache, itemID uint) error {
	item, err := items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}

	if !checker.ItemOnSale(item) {
		fmt.Printf("%s: not on sale\n", item.Name)
	}

	for _, comb := range cache.AllCombinations(item) {
		if !comb.Available {
			continue
		}
		var result availability.Result
		if comb.Variation != nil {
			result, err = checker.CheckVariation(ctx, comb.Variation)
		} else {
			result, err = checker.CheckItem(ctx, item)
		}
		if err != nil {
			return err
		}
		remaining := "unlimited"
		if result.Remaining != nil {
			remaining = strconv.FormatInt(*result.Remaining, 10)
		}
		fmt.Printf("%s [%s] %s: %s, %s left\n",
			item.Name, comb.Key, comb.Price.StringFixed(2), result.Status, remaining)
	}
	return nil
}

// The catalog job loads the pricing and products CSV files into
// storage. Run it after each catalog update; each category is replaced
// whole.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/stickerlab/backend/config"
	"github.com/stickerlab/backend/internal/adapter/storage"
	"github.com/stickerlab/backend/internal/core/service"
	"github.com/stickerlab/backend/pkg/sigctx"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	initLogger(cfg.LogLevel)

	sqldb, err := storage.NewSQLDB(sigCtx, cfg.SQLDB)
	if err != nil {
		die("main", err)
	}
	defer sqldb.Close()

	catalog := service.NewCatalog(
		storage.NewPricingRepository(sqldb),
		storage.NewProductsRepository(sqldb),
		cfg.Shop.MarkupPercent,
	)

	start := time.Now()

	ingestPricing(sigCtx, catalog, cfg.Shop.PriceCSV)
	ingestProducts(sigCtx, catalog, cfg.Shop.ProductsCSV)

	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func ingestPricing(
	ctx context.Context, catalog service.CatalogService, path string,
) {
	const op = "main.ingestPricing"

	if path == "" {
		fmt.Println("no price csv configured, skipping pricing")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		die(op, err)
	}
	defer f.Close()

	report, err := catalog.IngestPricing(ctx, f)
	if err != nil {
		die(op, err)
	}

	fmt.Printf(`pricing ingested:
	stickers=%d
	magnets=%d
	fridge magnets=%d
	skipped cells=%d
	skipped rows=%d
`,
		report.StickerEntries,
		report.MagnetEntries,
		report.FridgeEntries,
		report.SkippedCells,
		report.SkippedRows,
	)
}

func ingestProducts(
	ctx context.Context, catalog service.CatalogService, path string,
) {
	const op = "main.ingestProducts"

	if path == "" {
		fmt.Println("no products csv configured, skipping products")
		return
	}

	f, err := os.Open(path)
	if err != nil {
		die(op, err)
	}
	defer f.Close()

	n, err := catalog.IngestProducts(ctx, f)
	if err != nil {
		die(op, err)
	}
	fmt.Printf("products ingested: %d\n", n)
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func die(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

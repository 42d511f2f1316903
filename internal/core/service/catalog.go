package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/stickerlab/backend/internal/core/catalog"
	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
	"github.com/stickerlab/backend/internal/core/pricetable"
)

var _ port.CatalogIngester = (*CatalogService)(nil)
var _ port.ProductsProvider = (*CatalogService)(nil)

// CatalogService owns the batch refresh (parse, derive, bulk replace)
// and the catalog read side.
type CatalogService struct {
	pricing   port.PricingWriter
	products  port.ProductsStorage
	markupPct int
}

func NewCatalog(
	pricing port.PricingWriter, products port.ProductsStorage, markupPct int,
) CatalogService {
	return CatalogService{pricing, products, markupPct}
}

// IngestPricing parses the price table, derives the fridge-magnet line
// and replaces all three categories. Each category is replaced whole;
// concurrent refreshes resolve last-writer-wins per category.
func (s CatalogService) IngestPricing(
	ctx context.Context, r io.Reader,
) (port.IngestReport, error) {
	const op = "CatalogService.IngestPricing"
	log := slog.With("op", op)

	parsed, err := pricetable.Parse(r)
	if err != nil {
		return port.IngestReport{}, fmt.Errorf("%s: %w", op, err)
	}

	fridge := pricetable.DeriveFridge(
		parsed.Magnets, domain.FridgeSizeMapping, s.markupPct,
	)

	for _, batch := range []struct {
		category domain.Category
		entries  []domain.PriceEntry
	}{
		{domain.CategorySticker, parsed.Stickers},
		{domain.CategoryMagnet, parsed.Magnets},
		{domain.CategoryFridgeMagnet, fridge},
	} {
		if err := s.pricing.ReplaceCategory(ctx, batch.category, batch.entries); err != nil {
			return port.IngestReport{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	report := port.IngestReport{
		StickerEntries: len(parsed.Stickers),
		MagnetEntries:  len(parsed.Magnets),
		FridgeEntries:  len(fridge),
		SkippedCells:   parsed.SkippedCells,
		SkippedRows:    parsed.SkippedRows,
	}

	if report.SkippedCells > 0 || report.SkippedRows > 0 {
		log.Warn("price table had unparseable data",
			"skippedCells", report.SkippedCells,
			"skippedRows", report.SkippedRows)
	}
	log.Info("pricing replaced",
		"stickers", report.StickerEntries,
		"magnets", report.MagnetEntries,
		"fridgeMagnets", report.FridgeEntries)

	return report, nil
}

// IngestProducts replaces the product catalog from the products CSV.
func (s CatalogService) IngestProducts(
	ctx context.Context, r io.Reader,
) (int, error) {
	const op = "CatalogService.IngestProducts"

	products, err := catalog.ParseProducts(r)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.products.ReplaceProducts(ctx, products); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	slog.Info("products replaced", "op", op, "count", len(products))
	return len(products), nil
}

// Products lists the catalog, optionally filtered by a type token,
// sorted by name for stable ordering.
func (s CatalogService) Products(
	ctx context.Context, typeToken string,
) ([]domain.Product, error) {
	const op = "CatalogService.Products"

	all, err := s.products.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if typeToken != "" {
		category, err := domain.ParseCategory(typeToken)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		filtered := all[:0]
		for _, p := range all {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.PricingProvider = (*PricingService)(nil)

// PricingService answers pricing lookups against the persisted matrix.
// Lookups are exact string/number matches, no interpolation.
type PricingService struct {
	reader port.PricingReader
}

func NewPricing(reader port.PricingReader) PricingService {
	return PricingService{reader}
}

// SizePricing returns the quantity/price breakpoints for one size.
// "category known but empty" and "size absent" are both not-found, but
// surface as distinct sentinels so callers can tell the stages apart.
func (s PricingService) SizePricing(
	ctx context.Context, typeToken, size string,
) ([]domain.QuantityPrice, error) {
	const op = "PricingService.SizePricing"

	category, err := domain.ParseCategory(typeToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	prices, err := s.reader.SizePrices(ctx, category, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(prices) == 0 {
		entries, err := s.reader.CategoryEntries(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("%s: %q: %w", op, category, domain.ErrCategoryEmpty)
		}
		return nil, fmt.Errorf("%s: %q: %w", op, size, domain.ErrSizeNotFound)
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Quantity < prices[j].Quantity
	})
	return prices, nil
}

// UnitPrice is the single-cell lookup: exact (category, size, quantity)
// match or ErrSizeNotFound.
func (s PricingService) UnitPrice(
	ctx context.Context, typeToken, size string, quantity int,
) (domain.Money, error) {
	const op = "PricingService.UnitPrice"

	prices, err := s.SizePricing(ctx, typeToken, size)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	for _, p := range prices {
		if p.Quantity == quantity {
			return p.UnitPrice, nil
		}
	}
	return 0, fmt.Errorf("%s: quantity %d: %w", op, quantity, domain.ErrSizeNotFound)
}

// CategoryMatrix assembles the full matrix for one category: sizes
// sorted by their numeric dimensions, quantities as the ascending union
// across sizes.
func (s PricingService) CategoryMatrix(
	ctx context.Context, typeToken string,
) (domain.PriceMatrix, error) {
	const op = "PricingService.CategoryMatrix"

	category, err := domain.ParseCategory(typeToken)
	if err != nil {
		return domain.PriceMatrix{}, fmt.Errorf("%s: %w", op, err)
	}

	entries, err := s.reader.CategoryEntries(ctx, category)
	if err != nil {
		return domain.PriceMatrix{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(entries) == 0 {
		return domain.PriceMatrix{}, fmt.Errorf(
			"%s: %q: %w", op, category, domain.ErrCategoryEmpty,
		)
	}

	bySize := make(map[string][]domain.QuantityPrice)
	quantitySet := make(map[int]struct{})
	for _, e := range entries {
		bySize[e.Size] = append(bySize[e.Size], domain.QuantityPrice{
			Quantity:  e.Quantity,
			UnitPrice: e.UnitPrice,
		})
		quantitySet[e.Quantity] = struct{}{}
	}

	sizes := make([]string, 0, len(bySize))
	for size := range bySize {
		sizes = append(sizes, size)
		sort.Slice(bySize[size], func(i, j int) bool {
			return bySize[size][i].Quantity < bySize[size][j].Quantity
		})
	}
	domain.SortSizeTokens(sizes)

	quantities := make([]int, 0, len(quantitySet))
	for q := range quantitySet {
		quantities = append(quantities, q)
	}
	sort.Ints(quantities)

	return domain.PriceMatrix{
		Category:   category,
		Sizes:      sizes,
		Quantities: quantities,
		BySize:     bySize,
	}, nil
}

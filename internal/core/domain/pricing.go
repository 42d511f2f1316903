package domain

import (
	"fmt"
	"strings"
)

// Category is one of the three product lines the shop prices.
type Category string

const (
	CategorySticker      Category = "sticker"
	CategoryMagnet       Category = "magnet"
	CategoryFridgeMagnet Category = "fridge_magnet"
)

// ParseCategory resolves a case-insensitive request token to the
// canonical category. "fridge" is the public token for fridge magnets;
// the per-product type names older clients send resolve to their
// product line.
func ParseCategory(token string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "sticker", "die_cut_sticker", "vinyl_sticker":
		return CategorySticker, nil
	case "magnet", "die_cut_magnet", "flat_magnet":
		return CategoryMagnet, nil
	case "fridge", "fridge_magnet", "refrigerator_magnet":
		return CategoryFridgeMagnet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, token)
}

// PriceEntry is one cell of the price matrix, unique per
// (category, size, quantity). A bulk ingestion replaces a whole
// category, it never patches single entries.
type PriceEntry struct {
	Category  Category
	Size      string
	Quantity  int
	UnitPrice Money
}

// QuantityPrice is one quantity breakpoint with its unit price.
type QuantityPrice struct {
	Quantity  int
	UnitPrice Money
}

// PriceMatrix is the full pricing picture for one category.
type PriceMatrix struct {
	Category   Category
	Sizes      []string
	Quantities []int
	BySize     map[string][]QuantityPrice
}

// FridgeSizeMapping binds each fixed fridge-magnet size to the die-cut
// magnet size whose prices seed its markup. Static configuration, not
// derived data.
var FridgeSizeMapping = map[string]string{
	"2x3":     "3x3",
	"2.5x3.5": "3x3",
	"4.75x2":  "5x5",
	"2.5x2.5": "3x3",
}

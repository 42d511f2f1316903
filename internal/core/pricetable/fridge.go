package pricetable

import (
	"github.com/stickerlab/backend/internal/core/domain"
)

// DeriveFridge computes the fridge-magnet price entries from the
// die-cut magnet entries. For every fridge size the mapped base size's
// prices are marked up by pct percent, rounded half-up to cents. A base
// size with no magnet entries yields no derived entries for that fridge
// size. Deterministic; re-run in full on every catalog refresh.
func DeriveFridge(
	magnets []domain.PriceEntry, mapping map[string]string, pct int,
) []domain.PriceEntry {
	bySize := make(map[string][]domain.PriceEntry)
	for _, e := range magnets {
		bySize[e.Size] = append(bySize[e.Size], e)
	}

	var derived []domain.PriceEntry
	for _, fridgeSize := range sortedKeys(mapping) {
		baseSize := mapping[fridgeSize]
		for _, base := range bySize[baseSize] {
			derived = append(derived, domain.PriceEntry{
				Category:  domain.CategoryFridgeMagnet,
				Size:      fridgeSize,
				Quantity:  base.Quantity,
				UnitPrice: base.UnitPrice.AddPercent(pct),
			})
		}
	}
	return derived
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	domain.SortSizeTokens(keys)
	return keys
}

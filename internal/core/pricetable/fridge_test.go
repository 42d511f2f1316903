package pricetable

import (
	"testing"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveFridge(t *testing.T) {
	magnets := []domain.PriceEntry{
		{Category: domain.CategoryMagnet, Size: "3x3", Quantity: 100, UnitPrice: 124},
		{Category: domain.CategoryMagnet, Size: "3x3", Quantity: 200, UnitPrice: 105},
		{Category: domain.CategoryMagnet, Size: "5x5", Quantity: 100, UnitPrice: 190},
	}

	t.Run("MarkupRoundedHalfUp", func(t *testing.T) {
		derived := DeriveFridge(magnets, map[string]string{"2x3": "3x3"}, 15)
		require.Len(t, derived, 2)

		// $1.24 * 1.15 = $1.426 -> $1.43
		assert.Equal(t, domain.Money(143), derived[0].UnitPrice)
		assert.Equal(t, "2x3", derived[0].Size)
		assert.Equal(t, 100, derived[0].Quantity)
		assert.Equal(t, domain.CategoryFridgeMagnet, derived[0].Category)
	})

	t.Run("FullMapping", func(t *testing.T) {
		derived := DeriveFridge(magnets, domain.FridgeSizeMapping, 15)

		// Three fridge sizes map to 3x3 (2 breakpoints each), one
		// maps to 5x5 (1 breakpoint).
		assert.Len(t, derived, 7)

		perSize := make(map[string]int)
		for _, e := range derived {
			perSize[e.Size]++
		}
		assert.Equal(t, map[string]int{
			"2x3": 2, "2.5x3.5": 2, "2.5x2.5": 2, "4.75x2": 1,
		}, perSize)
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := DeriveFridge(magnets, domain.FridgeSizeMapping, 15)
		for range 5 {
			assert.Equal(t, first, DeriveFridge(magnets, domain.FridgeSizeMapping, 15))
		}
	})

	t.Run("UnmappedBaseYieldsNothing", func(t *testing.T) {
		derived := DeriveFridge(magnets, map[string]string{"9x9": "8x8"}, 15)
		assert.Empty(t, derived)
	})

	t.Run("NoMagnets", func(t *testing.T) {
		derived := DeriveFridge(nil, domain.FridgeSizeMapping, 15)
		assert.Empty(t, derived)
	})
}

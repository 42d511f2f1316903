package pricetable

import (
	"strings"
	"testing"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Price Table 2024,,,,,,,,,,,,,
STICKERS PRICING,,,,,,,,,,,,,
SIZE,12,25,50,75,100,200,300,600,1000,2000,3000,6000,10000
2x2,2.10,1.60,1.20,1.00,0.90,0.75,0.65,0.50,0.40,0.30,0.25,0.20,0.15
5x5,3.40,2.60,1.43,1.30,1.10,0.95,0.80,0.70,0.60,0.50,0.45,0.40,0.35
,,,,,,,,,,,,,
MAGNETS PRICING,,,,,,,,,,,,,
SIZE,12,25,50,75,100,200,300,600,1000,2000,3000,6000,10000
3x3,2.90,2.20,1.70,1.50,1.24,1.05,0.90,0.80,0.70,0.60,0.55,0.50,0.45
5x5,4.10,3.20,2.40,2.10,1.90,1.60,1.40,1.20,1.00,0.90,0.80,0.70,0.65
`

func TestParse(t *testing.T) {
	t.Run("TwoSections", func(t *testing.T) {
		res, err := Parse(strings.NewReader(sampleCSV))
		require.NoError(t, err)

		assert.Len(t, res.Stickers, 26)
		assert.Len(t, res.Magnets, 26)
		assert.Zero(t, res.SkippedCells)
	})

	t.Run("CellMapping", func(t *testing.T) {
		res, err := Parse(strings.NewReader(sampleCSV))
		require.NoError(t, err)

		var found bool
		for _, e := range res.Stickers {
			if e.Size == "5x5" && e.Quantity == 50 {
				found = true
				assert.Equal(t, domain.Money(143), e.UnitPrice)
				assert.Equal(t, domain.CategorySticker, e.Category)
			}
		}
		assert.True(t, found, "expected entry for (5x5, 50)")
	})

	t.Run("BlankCellAbsent", func(t *testing.T) {
		csv := "STICKERS PRICING,,,\n" +
			"SIZE,12,25,50\n" +
			"2x2,2.10,,1.20\n"
		res, err := Parse(strings.NewReader(csv))
		require.NoError(t, err)

		require.Len(t, res.Stickers, 2)
		assert.Equal(t, 12, res.Stickers[0].Quantity)
		assert.Equal(t, 50, res.Stickers[1].Quantity)
		assert.Zero(t, res.SkippedCells)
	})

	t.Run("UnparseableCellSkippedAndCounted", func(t *testing.T) {
		csv := "MAGNETS PRICING,,,\n" +
			"3x3,1.20,call us,0.90\n"
		res, err := Parse(strings.NewReader(csv))
		require.NoError(t, err)

		assert.Len(t, res.Magnets, 2)
		assert.Equal(t, 1, res.SkippedCells)
	})

	t.Run("RowsBeforeSectionIgnored", func(t *testing.T) {
		csv := "2x2,1.00,2.00\n" +
			"STICKERS PRICING,,\n" +
			"2x2,1.00,2.00\n"
		res, err := Parse(strings.NewReader(csv))
		require.NoError(t, err)

		assert.Len(t, res.Stickers, 2)
		assert.Equal(t, 1, res.SkippedRows)
	})

	t.Run("NonSizeRowSkipped", func(t *testing.T) {
		csv := "STICKERS PRICING,,\n" +
			"note: prices in USD,,\n" +
			"2x2,1.00,2.00\n"
		res, err := Parse(strings.NewReader(csv))
		require.NoError(t, err)

		assert.Len(t, res.Stickers, 2)
		assert.Equal(t, 1, res.SkippedRows)
	})

	t.Run("SectionMarkerCaseInsensitive", func(t *testing.T) {
		csv := "Stickers Pricing,,\n" +
			"2x2,1.00,2.00\n"
		res, err := Parse(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Len(t, res.Stickers, 2)
	})

	t.Run("Empty", func(t *testing.T) {
		res, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, res.Stickers)
		assert.Empty(t, res.Magnets)
	})
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPricingReader struct {
	mock.Mock
}

func (m *mockPricingReader) SizePrices(
	ctx context.Context, c domain.Category, size string,
) ([]domain.QuantityPrice, error) {
	args := m.Called(ctx, c, size)
	if v := args.Get(0); v != nil {
		return v.([]domain.QuantityPrice), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPricingReader) CategoryEntries(
	ctx context.Context, c domain.Category,
) ([]domain.PriceEntry, error) {
	args := m.Called(ctx, c)
	if v := args.Get(0); v != nil {
		return v.([]domain.PriceEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSizePricing(t *testing.T) {
	t.Run("SortedByQuantity", func(t *testing.T) {
		reader := new(mockPricingReader)
		reader.On("SizePrices", mock.Anything, domain.CategorySticker, "5x5").
			Return([]domain.QuantityPrice{
				{Quantity: 200, UnitPrice: 105},
				{Quantity: 50, UnitPrice: 143},
				{Quantity: 100, UnitPrice: 124},
			}, nil)

		s := NewPricing(reader)
		prices, err := s.SizePricing(context.Background(), "sticker", "5x5")
		require.NoError(t, err)

		assert.Equal(t, []domain.QuantityPrice{
			{Quantity: 50, UnitPrice: 143},
			{Quantity: 100, UnitPrice: 124},
			{Quantity: 200, UnitPrice: 105},
		}, prices)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		s := NewPricing(new(mockPricingReader))
		_, err := s.SizePricing(context.Background(), "poster", "5x5")
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})

	t.Run("EmptyCategory", func(t *testing.T) {
		reader := new(mockPricingReader)
		reader.On("SizePrices", mock.Anything, domain.CategorySticker, "5x5").
			Return(nil, nil)
		reader.On("CategoryEntries", mock.Anything, domain.CategorySticker).
			Return(nil, nil)

		s := NewPricing(reader)
		_, err := s.SizePricing(context.Background(), "sticker", "5x5")
		assert.ErrorIs(t, err, domain.ErrCategoryEmpty)
	})

	t.Run("SizeAbsentInPopulatedCategory", func(t *testing.T) {
		reader := new(mockPricingReader)
		reader.On("SizePrices", mock.Anything, domain.CategorySticker, "9x9").
			Return(nil, nil)
		reader.On("CategoryEntries", mock.Anything, domain.CategorySticker).
			Return([]domain.PriceEntry{
				{Category: domain.CategorySticker, Size: "5x5", Quantity: 50, UnitPrice: 143},
			}, nil)

		s := NewPricing(reader)
		_, err := s.SizePricing(context.Background(), "sticker", "9x9")
		assert.ErrorIs(t, err, domain.ErrSizeNotFound)
		assert.NotErrorIs(t, err, domain.ErrCategoryEmpty)
	})

	t.Run("ReaderFailure", func(t *testing.T) {
		reader := new(mockPricingReader)
		reader.On("SizePrices", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("db down"))

		s := NewPricing(reader)
		_, err := s.SizePricing(context.Background(), "magnet", "3x3")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrSizeNotFound)
	})
}

func TestUnitPrice(t *testing.T) {
	reader := new(mockPricingReader)
	reader.On("SizePrices", mock.Anything, domain.CategorySticker, "5x5").
		Return([]domain.QuantityPrice{
			{Quantity: 50, UnitPrice: 143},
			{Quantity: 100, UnitPrice: 124},
		}, nil)
	s := NewPricing(reader)

	t.Run("ExactMatch", func(t *testing.T) {
		price, err := s.UnitPrice(context.Background(), "sticker", "5x5", 100)
		require.NoError(t, err)
		assert.Equal(t, domain.Money(124), price)
	})

	t.Run("QuantityNotInTable", func(t *testing.T) {
		_, err := s.UnitPrice(context.Background(), "sticker", "5x5", 75)
		assert.ErrorIs(t, err, domain.ErrSizeNotFound)
	})
}

func TestCategoryMatrix(t *testing.T) {
	t.Run("SizesNumericQuantitiesUnion", func(t *testing.T) {
		reader := new(mockPricingReader)
		reader.On("CategoryEntries", mock.Anything, domain.CategorySticker).
			Return([]domain.PriceEntry{
				{Category: domain.CategorySticker, Size: "10x10", Quantity: 50, UnitPrice: 320},
				{Category: domain.CategorySticker, Size: "2x2", Quantity: 100, UnitPrice: 90},
				{Category: domain.CategorySticker, Size: "2x2", Quantity: 50, UnitPrice: 110},
				{Category: domain.CategorySticker, Size: "5x5", Quantity: 200, UnitPrice: 105},
			}, nil)

		s := NewPricing(reader)
		matrix, err := s.CategoryMatrix(context.Background(), "sticker")
		require.NoError(t, err)

		// Numeric size order, not lexical: 10x10 sorts last.
		assert.Equal(t, []string{"2x2", "5x5", "10x10"}, matrix.Sizes)
		assert.Equal(t, []int{50, 100, 200}, matrix.Quantities)
		assert.Equal(t, []domain.QuantityPrice{
			{Quantity: 50, UnitPrice: 110},
			{Quantity: 100, UnitPrice: 90},
		}, matrix.BySize["2x2"])
	})

	t.Run("EmptyCategory", func(t *testing.T) {
		reader := new(mockPricingReader)
		reader.On("CategoryEntries", mock.Anything, domain.CategoryMagnet).
			Return(nil, nil)

		s := NewPricing(reader)
		_, err := s.CategoryMatrix(context.Background(), "magnet")
		assert.ErrorIs(t, err, domain.ErrCategoryEmpty)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		s := NewPricing(new(mockPricingReader))
		_, err := s.CategoryMatrix(context.Background(), "tshirt")
		assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	})
}

package kafka

import (
	"testing"
	"time"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderSchemaMapping(t *testing.T) {
	o := domain.Order{
		OrderID:   "SLMAG-20240615103045-A1B",
		OrderDate: time.Date(2024, 6, 15, 10, 30, 45, 0, time.UTC),
		Status:    domain.StatusPendingPayment,
		Customer: domain.Customer{
			Name: "Jane Smith", Email: "jane@example.com", Phone: "555-123-4567",
		},
		ShippingAddress: domain.Address{
			Street: "123 Main St", City: "Austin", State: "TX",
			Zip: "78701", Country: "USA",
		},
		Items: []domain.OrderItem{
			{
				ProductType: "die_cut_sticker",
				Size:        "5x5",
				Quantity:    50,
				UnitPrice:   143,
				TotalPrice:  7150,
				ArtworkURL:  "https://cdn/art.png",
			},
		},
		Subtotal:    7150,
		Total:       7150,
		PaymentInfo: []byte(`{"method":"card"}`),
	}

	t.Run("RoundTrip", func(t *testing.T) {
		got := schemaV1ToOrder(orderToSchemaV1(o))
		assert.Equal(t, o, got)
	})

	t.Run("MoneyAsDecimalDollars", func(t *testing.T) {
		s := orderToSchemaV1(o)
		assert.Equal(t, 71.50, s.Total)
		assert.Equal(t, 1.43, s.Items[0].UnitPrice)
	})

	t.Run("MoneyFromFloatRounds", func(t *testing.T) {
		assert.Equal(t, domain.Money(143), moneyFromFloat(1.43))
		assert.Equal(t, domain.Money(100), moneyFromFloat(0.999999))
	})

	t.Run("UnparseableDateZero", func(t *testing.T) {
		s := orderToSchemaV1(o)
		s.OrderDate = "yesterday"
		got := schemaV1ToOrder(s)
		assert.True(t, got.OrderDate.IsZero())
	})

	t.Run("EmptyPaymentInfoStaysNil", func(t *testing.T) {
		bare := domain.Order{OrderID: "SLMAG-1"}
		s := orderToSchemaV1(bare)
		require.Empty(t, s.PaymentInfo)
		assert.Nil(t, schemaV1ToOrder(s).PaymentInfo)
	})
}

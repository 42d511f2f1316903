package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrdersStorage struct {
	mock.Mock
}

func (m *mockOrdersStorage) SaveOrder(ctx context.Context, o domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrdersStorage) OrdersByEmail(
	ctx context.Context, email string,
) ([]domain.Order, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.([]domain.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyOrderPlaced(ctx context.Context, o domain.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func testReconciler() order.Reconciler {
	r := order.NewReconciler("SLMAG")
	r.Now = func() time.Time {
		return time.Date(2024, 6, 15, 10, 30, 45, 0, time.UTC)
	}
	r.Suffix = func() string { return "A1B" }
	return r
}

func testSubmission() order.Submission {
	return order.Submission{
		CustomerInfo: order.SubmissionCustomer{
			Name:  "Jane Smith",
			Email: "jane@example.com",
		},
		ShippingAddress: &order.SubmissionAddress{
			Street: "123 Main St",
			City:   "Austin",
			State:  "TX",
			Zip:    "78701",
		},
		Items: []order.SubmissionItem{
			{ProductType: "die_cut_sticker", Size: "5x5", Quantity: 50, UnitPrice: 143},
		},
	}
}

func TestPlaceOrder(t *testing.T) {
	t.Run("SavesAndNotifies", func(t *testing.T) {
		storage := new(mockOrdersStorage)
		notifier := new(mockNotifier)
		storage.On("SaveOrder", mock.Anything, mock.Anything).Return(nil)
		notifier.On("NotifyOrderPlaced", mock.Anything, mock.Anything).Return(nil)

		s := NewOrders(testReconciler(), storage, notifier)
		placed, err := s.PlaceOrder(context.Background(), testSubmission())
		require.NoError(t, err)

		assert.Equal(t, "SLMAG-20240615103045-A1B", placed.Order.OrderID)
		assert.True(t, placed.EmailQueued)
		assert.Equal(t, domain.Money(7150), placed.Order.Total)
		storage.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("ValidationFailureReturnsAllViolations", func(t *testing.T) {
		storage := new(mockOrdersStorage)
		notifier := new(mockNotifier)

		sub := testSubmission()
		sub.CustomerInfo.Email = "bad"
		sub.Items = nil

		s := NewOrders(testReconciler(), storage, notifier)
		_, err := s.PlaceOrder(context.Background(), sub)

		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Violations, "Invalid email format")
		assert.Contains(t, vErr.Violations, "Order must contain at least one item")
		storage.AssertNotCalled(t, "SaveOrder", mock.Anything, mock.Anything)
	})

	t.Run("StorageFailureIsFatal", func(t *testing.T) {
		storage := new(mockOrdersStorage)
		notifier := new(mockNotifier)
		storage.On("SaveOrder", mock.Anything, mock.Anything).
			Return(errors.New("db down"))

		s := NewOrders(testReconciler(), storage, notifier)
		_, err := s.PlaceOrder(context.Background(), testSubmission())

		require.Error(t, err)
		notifier.AssertNotCalled(t, "NotifyOrderPlaced", mock.Anything, mock.Anything)
	})

	t.Run("NotifyFailureDegradesToFlag", func(t *testing.T) {
		storage := new(mockOrdersStorage)
		notifier := new(mockNotifier)
		storage.On("SaveOrder", mock.Anything, mock.Anything).Return(nil)
		notifier.On("NotifyOrderPlaced", mock.Anything, mock.Anything).
			Return(errors.New("broker unreachable"))

		s := NewOrders(testReconciler(), storage, notifier)
		placed, err := s.PlaceOrder(context.Background(), testSubmission())

		require.NoError(t, err)
		assert.False(t, placed.EmailQueued)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := NewOrders(testReconciler(), new(mockOrdersStorage), new(mockNotifier))
		_, err := s.PlaceOrder(ctx, testSubmission())
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestOrdersByEmail(t *testing.T) {
	t.Run("PassesThrough", func(t *testing.T) {
		storage := new(mockOrdersStorage)
		want := []domain.Order{{OrderID: "SLMAG-1"}}
		storage.On("OrdersByEmail", mock.Anything, "jane@example.com").
			Return(want, nil)

		s := NewOrders(testReconciler(), storage, new(mockNotifier))
		got, err := s.OrdersByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("WrapsStorageError", func(t *testing.T) {
		storage := new(mockOrdersStorage)
		storage.On("OrdersByEmail", mock.Anything, mock.Anything).
			Return(nil, errors.New("db down"))

		s := NewOrders(testReconciler(), storage, new(mockNotifier))
		_, err := s.OrdersByEmail(context.Background(), "jane@example.com")
		assert.Error(t, err)
	})
}

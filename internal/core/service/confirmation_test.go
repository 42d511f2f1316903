package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
	"github.com/stickerlab/backend/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// singleAttempt keeps failure paths from sleeping through the backoff.
func singleAttempt(s ConfirmationService) ConfirmationService {
	s.retryCfg = retry.Config{MaxAttempts: 1}
	return s
}

func TestSendOrderConfirmation(t *testing.T) {
	staff := []string{"orders@stickerlab.example"}
	placedOrder := domain.Order{
		OrderID:  "SLMAG-20240615103045-A1B",
		Customer: domain.Customer{Email: "jane@example.com"},
	}

	t.Run("SendsBothEmails", func(t *testing.T) {
		sender := new(mockEmailSender)
		renderer := new(mockEmailRenderer)
		renderer.On("CustomerConfirmation", placedOrder).
			Return(port.Email{Subject: "Order Confirmation"}, nil)
		renderer.On("StaffNotification", placedOrder).
			Return(port.Email{Subject: "New Order"}, nil)
		sender.On("Send", mock.Anything, []string{"jane@example.com"}, mock.Anything).
			Return(nil)
		sender.On("Send", mock.Anything, staff, mock.Anything).Return(nil)

		s := NewConfirmation(renderer, sender, staff)
		require.NoError(t, s.SendOrderConfirmation(context.Background(), placedOrder))
		sender.AssertExpectations(t)
	})

	t.Run("OneDeliverySuffices", func(t *testing.T) {
		sender := new(mockEmailSender)
		renderer := new(mockEmailRenderer)
		renderer.On("CustomerConfirmation", placedOrder).Return(port.Email{}, nil)
		renderer.On("StaffNotification", placedOrder).Return(port.Email{}, nil)
		sender.On("Send", mock.Anything, []string{"jane@example.com"}, mock.Anything).
			Return(errors.New("mailbox full"))
		sender.On("Send", mock.Anything, staff, mock.Anything).Return(nil)

		s := singleAttempt(NewConfirmation(renderer, sender, staff))
		assert.NoError(t, s.SendOrderConfirmation(context.Background(), placedOrder))
	})

	t.Run("BothFailuresReported", func(t *testing.T) {
		sender := new(mockEmailSender)
		renderer := new(mockEmailRenderer)
		renderer.On("CustomerConfirmation", placedOrder).Return(port.Email{}, nil)
		renderer.On("StaffNotification", placedOrder).Return(port.Email{}, nil)
		sender.On("Send", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("smtp refused"))

		s := singleAttempt(NewConfirmation(renderer, sender, staff))
		assert.Error(t, s.SendOrderConfirmation(context.Background(), placedOrder))
	})

	t.Run("NoCustomerEmailStillNotifiesStaff", func(t *testing.T) {
		anonymous := domain.Order{OrderID: "SLMAG-1"}

		sender := new(mockEmailSender)
		renderer := new(mockEmailRenderer)
		renderer.On("StaffNotification", anonymous).Return(port.Email{}, nil)
		sender.On("Send", mock.Anything, staff, mock.Anything).Return(nil)

		s := NewConfirmation(renderer, sender, staff)
		require.NoError(t, s.SendOrderConfirmation(context.Background(), anonymous))
		renderer.AssertNotCalled(t, "CustomerConfirmation", mock.Anything)
	})
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
	"github.com/stickerlab/backend/pkg/retry"
)

var _ port.ConfirmationSender = (*ConfirmationService)(nil)

// ConfirmationService turns a placed order into the customer
// confirmation and the staff notification emails. It succeeds when at
// least one of the two goes out.
type ConfirmationService struct {
	renderer port.EmailRenderer
	sender   port.EmailSender
	staff    []string
	retryCfg retry.Config
}

func NewConfirmation(
	renderer port.EmailRenderer, sender port.EmailSender, staff []string,
) ConfirmationService {
	return ConfirmationService{
		renderer: renderer,
		sender:   sender,
		staff:    staff,
		retryCfg: retry.Config{
			MaxAttempts: 3,
			Backoff:     retry.ExponentialBackoff(500 * time.Millisecond),
		},
	}
}

func (s ConfirmationService) SendOrderConfirmation(
	ctx context.Context, o domain.Order,
) error {
	const op = "ConfirmationService.SendOrderConfirmation"
	log := slog.With("op", op, "orderId", o.OrderID)

	customerErr := s.sendCustomer(ctx, o)
	if customerErr != nil {
		log.Error("customer confirmation failed", "err", customerErr)
	} else {
		log.Info("customer confirmation sent")
	}

	staffErr := s.sendStaff(ctx, o)
	if staffErr != nil {
		log.Error("staff notification failed", "err", staffErr)
	} else {
		log.Info("staff notification sent")
	}

	if customerErr != nil && staffErr != nil {
		return fmt.Errorf("%s: %w", op, errors.Join(customerErr, staffErr))
	}
	return nil
}

func (s ConfirmationService) sendCustomer(
	ctx context.Context, o domain.Order,
) error {
	if o.Customer.Email == "" {
		return errors.New("order has no customer email")
	}
	msg, err := s.renderer.CustomerConfirmation(o)
	if err != nil {
		return err
	}
	return retry.Do(ctx, s.retryCfg, func() error {
		return s.sender.Send(ctx, []string{o.Customer.Email}, msg)
	})
}

func (s ConfirmationService) sendStaff(
	ctx context.Context, o domain.Order,
) error {
	msg, err := s.renderer.StaffNotification(o)
	if err != nil {
		return err
	}
	return retry.Do(ctx, s.retryCfg, func() error {
		return s.sender.Send(ctx, s.staff, msg)
	})
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/order"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.OrderPlacer = (*OrderService)(nil)
var _ port.OrdersProvider = (*OrderService)(nil)

// OrderService runs the order intake: validate the raw submission,
// reconcile it into the canonical shape, persist, then hand off the
// confirmation trigger.
type OrderService struct {
	reconciler order.Reconciler
	storage    port.OrdersStorage
	notifier   port.OrderNotifier
}

func NewOrders(
	reconciler order.Reconciler,
	storage port.OrdersStorage,
	notifier port.OrderNotifier,
) OrderService {
	return OrderService{reconciler, storage, notifier}
}

// PlaceOrder accepts a submission in any supported client schema.
// Validation failures return a domain.ValidationError with the full
// violation list. Persistence failure is fatal; notification failure
// degrades to EmailQueued=false on the result.
func (s OrderService) PlaceOrder(
	ctx context.Context, sub order.Submission,
) (domain.PlacedOrder, error) {
	const op = "OrderService.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}

	if violations := order.Validate(sub); len(violations) > 0 {
		return domain.PlacedOrder{}, fmt.Errorf(
			"%s: %w", op, domain.ValidationError{Violations: violations},
		)
	}

	if idx := order.MismatchedTotals(sub); len(idx) > 0 {
		log.Warn("explicit item totals differ from unit price times quantity",
			"items", idx)
	}

	o := s.reconciler.Reconcile(sub)

	if err := s.storage.SaveOrder(ctx, o); err != nil {
		return domain.PlacedOrder{}, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("order saved", "orderId", o.OrderID)

	queued := true
	if err := s.notifier.NotifyOrderPlaced(ctx, o); err != nil {
		log.Error("failed to trigger confirmation", "orderId", o.OrderID, "err", err)
		queued = false
	}

	return domain.PlacedOrder{Order: o, EmailQueued: queued}, nil
}

func (s OrderService) OrdersByEmail(
	ctx context.Context, email string,
) ([]domain.Order, error) {
	const op = "OrderService.OrdersByEmail"

	orders, err := s.storage.OrdersByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

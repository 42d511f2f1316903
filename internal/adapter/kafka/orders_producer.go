package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.OrderNotifier = (*OrderPlacedProducer)(nil)

// OrderPlacedProducer emits one event per persisted order, keyed by
// orderId so retries of the same order land in the same partition.
type OrderPlacedProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewOrderPlacedProducer(opts ...ProducerOpt) (OrderPlacedProducer, error) {
	const op = "NewOrderPlacedProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return OrderPlacedProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}
	return OrderPlacedProducer{options.cl, options.encoder}, nil
}

func (p OrderPlacedProducer) Close() {
	const op = "OrderPlacedProducer.Close"
	log := slog.With("op", op)
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p OrderPlacedProducer) NotifyOrderPlaced(
	ctx context.Context, o domain.Order,
) error {
	const op = "OrderPlacedProducer.NotifyOrderPlaced"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(o)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res := p.cl.ProduceSync(ctx, r)
	if err := res.FirstErr(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (p OrderPlacedProducer) createRecord(
	o domain.Order,
) (*kgo.Record, error) {
	const op = "OrderPlacedProducer.createRecord"

	s := orderToSchemaV1(o)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(s.OrderID), Value: v}, nil
}

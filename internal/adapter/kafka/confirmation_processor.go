package kafka

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/lovoo/goka"
	"github.com/stickerlab/backend/internal/core/port"
	"github.com/stickerlab/backend/pkg/schema"
)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// An orderEventCodec used for serde [schema.OrderPlacedV1]
type orderEventCodec struct {
	serde Serde
}

func newOrderEventCodec(s Serde) orderEventCodec {
	return orderEventCodec{s}
}

func (c orderEventCodec) Encode(v any) ([]byte, error) {
	const op = "orderEventCodec.Encode"
	if _, ok := v.(schema.OrderPlacedV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c orderEventCodec) Decode(data []byte) (any, error) {
	const op = "orderEventCodec.Decode"
	var s schema.OrderPlacedV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

// A ConfirmationProcessor consumes order-placed events and hands each
// order to the confirmation sender. Stateless: the group exists only
// for offset tracking.
type ConfirmationProcessor struct {
	opPrefix string
	proc     processor
	sender   port.ConfirmationSender
}

func NewConfirmationProc(
	seedBrokers []string,
	inputStream string,
	group string,
	orderSerde Serde,
	sender port.ConfirmationSender,
) (*ConfirmationProcessor, error) {
	const op = "NewConfirmationProc"

	p := ConfirmationProcessor{
		opPrefix: "ConfirmationProcessor",
		sender:   sender,
	}

	gg := goka.DefineGroup(goka.Group(group),
		goka.Input(
			goka.Stream(inputStream),
			newOrderEventCodec(orderSerde),
			p.processFn,
		),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}
	return &p, nil
}

func (p *ConfirmationProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *ConfirmationProcessor) Close() {
	p.proc.close()
}

func (p *ConfirmationProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"

	event, _ := msg.(schema.OrderPlacedV1)
	log := slog.With(
		"op", makeOp(p.opPrefix, op), "orderId", event.OrderID,
	)

	o := schemaV1ToOrder(event)
	if err := p.sender.SendOrderConfirmation(ctx.Context(), o); err != nil {
		log.Error("failed to send confirmation", "err", err)
		return
	}
	log.Info("confirmation sent")
}

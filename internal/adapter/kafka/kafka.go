// Package kafka carries order-placed events between the shop server
// and the confirmation mailer.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"time"

	"github.com/lovoo/goka"
	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNonlogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func orderToSchemaV1(o domain.Order) (s schema.OrderPlacedV1) {
	s.OrderID = o.OrderID
	s.OrderDate = o.OrderDate.Format(time.RFC3339)
	s.Status = string(o.Status)
	s.Customer.Name = o.Customer.Name
	s.Customer.Email = o.Customer.Email
	s.Customer.Phone = o.Customer.Phone
	s.ShippingAddress.Street = o.ShippingAddress.Street
	s.ShippingAddress.Apartment = o.ShippingAddress.Apartment
	s.ShippingAddress.City = o.ShippingAddress.City
	s.ShippingAddress.State = o.ShippingAddress.State
	s.ShippingAddress.Zip = o.ShippingAddress.Zip
	s.ShippingAddress.Country = o.ShippingAddress.Country
	s.Subtotal = o.Subtotal.Float()
	s.Shipping = o.Shipping.Float()
	s.Total = o.Total.Float()
	s.PaymentInfo = string(o.PaymentInfo)

	s.Items = make([]schema.OrderItemV1, len(o.Items))
	for i, it := range o.Items {
		s.Items[i] = schema.OrderItemV1{
			ProductType:  it.ProductType,
			ProductName:  it.ProductName,
			Size:         it.Size,
			Shape:        it.Shape,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice.Float(),
			TotalPrice:   it.TotalPrice.Float(),
			ArtworkURL:   it.ArtworkURL,
			PreviewURL:   it.PreviewURL,
			Instructions: it.Instructions,
		}
	}
	return s
}

func schemaV1ToOrder(s schema.OrderPlacedV1) (o domain.Order) {
	o.OrderID = s.OrderID
	o.OrderDate, _ = time.Parse(time.RFC3339, s.OrderDate)
	o.Status = domain.OrderStatus(s.Status)
	o.Customer.Name = s.Customer.Name
	o.Customer.Email = s.Customer.Email
	o.Customer.Phone = s.Customer.Phone
	o.ShippingAddress.Street = s.ShippingAddress.Street
	o.ShippingAddress.Apartment = s.ShippingAddress.Apartment
	o.ShippingAddress.City = s.ShippingAddress.City
	o.ShippingAddress.State = s.ShippingAddress.State
	o.ShippingAddress.Zip = s.ShippingAddress.Zip
	o.ShippingAddress.Country = s.ShippingAddress.Country
	o.Subtotal = moneyFromFloat(s.Subtotal)
	o.Shipping = moneyFromFloat(s.Shipping)
	o.Total = moneyFromFloat(s.Total)
	if s.PaymentInfo != "" {
		o.PaymentInfo = []byte(s.PaymentInfo)
	}

	o.Items = make([]domain.OrderItem, len(s.Items))
	for i, it := range s.Items {
		o.Items[i] = domain.OrderItem{
			ProductType:  it.ProductType,
			ProductName:  it.ProductName,
			Size:         it.Size,
			Shape:        it.Shape,
			Quantity:     it.Quantity,
			UnitPrice:    moneyFromFloat(it.UnitPrice),
			TotalPrice:   moneyFromFloat(it.TotalPrice),
			ArtworkURL:   it.ArtworkURL,
			PreviewURL:   it.PreviewURL,
			Instructions: it.Instructions,
		}
	}
	return o
}

func moneyFromFloat(v float64) domain.Money {
	return domain.Money(math.Round(v * 100))
}

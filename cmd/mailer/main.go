// The mailer consumes order-placed events and sends the confirmation
// emails, keeping SMTP latency off the order-intake path.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/stickerlab/backend/config"
	"github.com/stickerlab/backend/internal/adapter/email"
	"github.com/stickerlab/backend/internal/adapter/kafka"
	"github.com/stickerlab/backend/internal/core/service"
	"github.com/stickerlab/backend/pkg/schema"
	"github.com/stickerlab/backend/pkg/sigctx"
	"github.com/twmb/franz-go/pkg/sr"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	initLogger(cfg.LogLevel)

	orderSerde := createOrderSerde(sigCtx, cfg)

	renderer := email.NewRenderer(cfg.Email.TemplateFlavor)
	sender := email.NewSMTPSender(
		cfg.Email.SMTPAddr, cfg.Email.From, cfg.Email.User, cfg.Email.Pass,
	)
	confirmation := service.NewConfirmation(
		renderer, sender, cfg.Email.StaffEmails,
	)

	proc, err := kafka.NewConfirmationProc(
		cfg.Broker.SeedBrokers,
		cfg.Broker.OrderPlacedTopic,
		cfg.Broker.ConfirmationGroup,
		orderSerde,
		confirmation,
	)
	if err != nil {
		die("main", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go proc.Run(sigCtx, closeApp, &wg)
	wg.Wait()

	<-sigCtx.Done()
	proc.Close()
}

func initLogger(level slog.Leveler) {
	opts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func createOrderSerde(ctx context.Context, cfg config.Config) schema.Serde {
	const op = "main.createOrderSerde"

	srClient, err := sr.NewClient(
		sr.URLs(cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		die(op, err)
	}

	orderSerde, err := schema.NewSerdeOrderPlacedV1(
		ctx,
		schema.SubjectOpt(cfg.Broker.OrderPlacedTopic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		die(op, err)
	}
	return orderSerde
}

func die(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

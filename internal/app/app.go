// Package app wires the shop server from config to running adapters.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/stickerlab/backend/config"
	"github.com/stickerlab/backend/internal/adapter/email"
	"github.com/stickerlab/backend/internal/adapter/httphandler"
	"github.com/stickerlab/backend/internal/adapter/kafka"
	"github.com/stickerlab/backend/internal/adapter/storage"
	"github.com/stickerlab/backend/internal/core/order"
	"github.com/stickerlab/backend/internal/core/port"
	"github.com/stickerlab/backend/internal/core/service"
	"github.com/stickerlab/backend/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type coreService struct {
	pricing  port.PricingProvider
	orders   port.OrderPlacer
	history  port.OrdersProvider
	products port.ProductsProvider
	contact  port.ContactReceiver
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	sqldb      storage.SQLDB
	producer   kafka.OrderPlacedProducer
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initProducer()
	app.initCoreService()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqldb, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb
}

func (app *App) initProducer() {
	const op = "App.initProducer"

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	topic := app.cfg.Broker.OrderPlacedTopic
	orderSerde, err := schema.NewSerdeOrderPlacedV1(
		app.ctx,
		schema.SubjectOpt(topic+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := kafka.NewOrderPlacedProducer(
		kafka.ProducerClientOpt(app.ctx, app.cfg.Broker.SeedBrokers, topic),
		kafka.ProducerEncoderOpt(orderSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = producer
}

func (app *App) initCoreService() {
	pricingRepo := storage.NewPricingRepository(app.sqldb)
	ordersRepo := storage.NewOrdersRepository(app.sqldb)
	productsRepo := storage.NewProductsRepository(app.sqldb)
	contactsRepo := storage.NewContactsRepository(app.sqldb)

	renderer := email.NewRenderer(app.cfg.Email.TemplateFlavor)
	sender := email.NewSMTPSender(
		app.cfg.Email.SMTPAddr,
		app.cfg.Email.From,
		app.cfg.Email.User,
		app.cfg.Email.Pass,
	)

	orderService := service.NewOrders(
		order.NewReconciler(app.cfg.Shop.OrderIDPrefix),
		ordersRepo,
		app.producer,
	)

	app.service.pricing = service.NewPricing(pricingRepo)
	app.service.orders = orderService
	app.service.history = orderService
	app.service.products = service.NewCatalog(
		pricingRepo, productsRepo, app.cfg.Shop.MarkupPercent,
	)
	app.service.contact = service.NewContact(
		contactsRepo, sender, renderer, app.cfg.Email.StaffEmails,
	)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterPricing(mux, app.service.pricing)
	httphandler.RegisterOrders(mux, app.service.orders, app.service.history)
	httphandler.RegisterProducts(mux, app.service.products)
	httphandler.RegisterContact(mux, app.service.contact)

	handler := httphandler.CORS(httphandler.AllowJSON(mux))
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.producer.Close()
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}

package port

import (
	"context"
	"io"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/order"
)

// Inbound ports, implemented by the core services.

type PricingProvider interface {
	// SizePricing answers "prices for (type, size)" with exact-match
	// lookup, sorted by quantity ascending.
	SizePricing(ctx context.Context, typeToken, size string) ([]domain.QuantityPrice, error)
	// CategoryMatrix returns the full matrix for a category.
	CategoryMatrix(ctx context.Context, typeToken string) (domain.PriceMatrix, error)
}

type OrderPlacer interface {
	PlaceOrder(context.Context, order.Submission) (domain.PlacedOrder, error)
}

type OrdersProvider interface {
	OrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
}

type ProductsProvider interface {
	Products(ctx context.Context, typeToken string) ([]domain.Product, error)
}

type ContactReceiver interface {
	ReceiveContact(context.Context, domain.Contact) (domain.Contact, error)
}

type CatalogIngester interface {
	IngestPricing(context.Context, io.Reader) (IngestReport, error)
	IngestProducts(context.Context, io.Reader) (int, error)
}

// IngestReport keeps data-quality regressions visible: parse failures
// are skipped, never fatal, but always counted.
type IngestReport struct {
	StickerEntries int
	MagnetEntries  int
	FridgeEntries  int
	SkippedCells   int
	SkippedRows    int
}

type ConfirmationSender interface {
	SendOrderConfirmation(context.Context, domain.Order) error
}

// Outbound ports, implemented by adapters.

type PricingReader interface {
	SizePrices(ctx context.Context, c domain.Category, size string) ([]domain.QuantityPrice, error)
	CategoryEntries(ctx context.Context, c domain.Category) ([]domain.PriceEntry, error)
}

type PricingWriter interface {
	ReplaceCategory(ctx context.Context, c domain.Category, entries []domain.PriceEntry) error
}

type OrdersStorage interface {
	SaveOrder(context.Context, domain.Order) error
	OrdersByEmail(ctx context.Context, email string) ([]domain.Order, error)
}

type ProductsStorage interface {
	ReplaceProducts(context.Context, []domain.Product) error
	Products(context.Context) ([]domain.Product, error)
}

type ContactsStorage interface {
	SaveContact(context.Context, domain.Contact) error
}

// OrderNotifier hands a persisted order to the confirmation pipeline.
// Callers treat failures as partial success, never as request failure.
type OrderNotifier interface {
	NotifyOrderPlaced(context.Context, domain.Order) error
}

type Email struct {
	Subject string
	HTML    string
}

type EmailRenderer interface {
	CustomerConfirmation(domain.Order) (Email, error)
	StaffNotification(domain.Order) (Email, error)
	ContactNotification(domain.Contact) (Email, error)
	ContactAutoReply(domain.Contact) (Email, error)
}

type EmailSender interface {
	Send(ctx context.Context, to []string, msg Email) error
}

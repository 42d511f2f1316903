package order

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/stickerlab/backend/internal/core/domain"
)

const (
	defaultCountry = "USA"
	base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	idSuffixLen    = 3
)

// Reconciler folds any supported submission schema into the canonical
// order shape. It never rejects: missing optional fields resolve to
// empty strings or zero values, and required-field enforcement is the
// validator's job.
type Reconciler struct {
	IDPrefix string

	// Now and Suffix are injection points for tests.
	Now    func() time.Time
	Suffix func() string
}

func NewReconciler(idPrefix string) Reconciler {
	return Reconciler{
		IDPrefix: idPrefix,
		Now:      time.Now,
		Suffix:   randSuffix,
	}
}

// Reconcile produces the canonical order. A client-supplied orderId is
// accepted verbatim; otherwise one is generated as
// {PREFIX}-{yyyyMMddHHmmss UTC}-{3 random base36 chars}.
func (r Reconciler) Reconcile(s Submission) domain.Order {
	now := r.Now().UTC()

	items := make([]domain.OrderItem, 0, len(s.Items))
	var subtotal domain.Money
	for _, it := range s.Items {
		total := it.Total()
		items = append(items, domain.OrderItem{
			ProductType:  it.ProductType,
			ProductName:  it.ProductName,
			Size:         it.Size,
			Shape:        it.Shape,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			TotalPrice:   total,
			ArtworkURL:   it.ArtworkSource(),
			PreviewURL:   it.PreviewSource(),
			Instructions: it.Instructions,
		})
		subtotal += total
	}

	total := s.Total
	if total == 0 {
		total = subtotal + s.Shipping
	}

	addr := s.Address()
	country := addr.Country
	if country == "" {
		country = defaultCountry
	}

	status := domain.StatusPendingPayment
	if s.Status != "" {
		status = domain.OrderStatus(s.Status)
	}

	return domain.Order{
		OrderID:   r.orderID(s.OrderID, now),
		OrderDate: r.orderDate(s.OrderDate, now),
		Status:    status,
		Customer: domain.Customer{
			Name:  s.CustomerInfo.DisplayName(),
			Email: s.CustomerInfo.Email,
			Phone: s.CustomerInfo.Phone,
		},
		ShippingAddress: domain.Address{
			Street:    addr.StreetLine(),
			Apartment: addr.Apartment,
			City:      addr.City,
			State:     addr.State,
			Zip:       addr.Zip,
			Country:   country,
		},
		Items:       items,
		Subtotal:    subtotal,
		Shipping:    s.Shipping,
		Total:       total,
		PaymentInfo: s.PaymentInfo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MismatchedTotals lists 1-based item indexes whose explicit totalPrice
// disagrees with unitPrice times quantity. Such orders are accepted,
// the caller logs the discrepancy.
func MismatchedTotals(s Submission) []int {
	var idx []int
	for i, it := range s.Items {
		if it.TotalPrice != 0 && it.TotalPrice != it.UnitPrice.MulQty(it.Quantity) {
			idx = append(idx, i+1)
		}
	}
	return idx
}

func (r Reconciler) orderID(clientID string, now time.Time) string {
	if clientID != "" {
		return clientID
	}
	return r.IDPrefix + "-" + now.Format("20060102150405") + "-" + r.Suffix()
}

func (r Reconciler) orderDate(raw string, now time.Time) time.Time {
	if raw == "" {
		return now
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return now
	}
	return t.UTC()
}

func randSuffix() string {
	var b strings.Builder
	for range idSuffixLen {
		b.WriteByte(base36Alphabet[rand.IntN(len(base36Alphabet))])
	}
	return b.String()
}

// Package email renders and sends the shop's transactional emails.
package email

import (
	"fmt"
	"strings"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

// Template flavors. Standard is the full branded layout, compact is a
// plain layout for mail clients that strip heavy inline styles.
const (
	FlavorStandard = "standard"
	FlavorCompact  = "compact"
)

// NewRenderer selects a renderer by flavor, defaulting to standard.
func NewRenderer(flavor string) port.EmailRenderer {
	if strings.EqualFold(flavor, FlavorCompact) {
		return NewCompactRenderer()
	}
	return NewStandardRenderer()
}

type orderView struct {
	OrderID       string
	OrderDate     string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	AddressLines  []string
	Items         []itemView
	Subtotal      string
	ShippingLabel string
	Total         string
}

type itemView struct {
	Index        int
	Product      string
	Size         string
	Shape        string
	Quantity     int
	Price        string
	ArtworkURL   string
	PreviewURL   string
	Instructions string
}

func newOrderView(o domain.Order) orderView {
	v := orderView{
		OrderID:       o.OrderID,
		OrderDate:     o.OrderDate.Format("2006-01-02"),
		CustomerName:  o.Customer.Name,
		CustomerEmail: o.Customer.Email,
		CustomerPhone: o.Customer.Phone,
		Subtotal:      formatUSD(o.Subtotal),
		ShippingLabel: "FREE",
		Total:         formatUSD(o.Total),
	}
	if v.CustomerName == "" {
		v.CustomerName = "Valued Customer"
	}
	if v.CustomerPhone == "" {
		v.CustomerPhone = "Not provided"
	}
	if o.Shipping > 0 {
		v.ShippingLabel = formatUSD(o.Shipping)
	}

	a := o.ShippingAddress
	for _, line := range []string{
		a.Street,
		a.Apartment,
		strings.TrimSpace(fmt.Sprintf("%s, %s %s", a.City, a.State, a.Zip)),
		a.Country,
	} {
		if line != "" && line != "," {
			v.AddressLines = append(v.AddressLines, line)
		}
	}

	for i, it := range o.Items {
		iv := itemView{
			Index:        i + 1,
			Product:      productTitle(it),
			Size:         it.Size,
			Shape:        it.Shape,
			Quantity:     it.Quantity,
			Price:        formatUSD(it.TotalPrice),
			ArtworkURL:   it.ArtworkURL,
			PreviewURL:   it.PreviewURL,
			Instructions: it.Instructions,
		}
		if iv.Shape == "" {
			iv.Shape = "Custom"
		}
		if iv.Instructions == "" {
			iv.Instructions = "None"
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

type contactView struct {
	ContactID string
	Name      string
	Email     string
	Subject   string
	Message   string
	Received  string
}

func newContactView(c domain.Contact) contactView {
	v := contactView{
		ContactID: c.ContactID,
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Received:  c.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if v.Name == "" {
		v.Name = "Customer"
	}
	if v.Subject == "" {
		v.Subject = "General Inquiry"
	}
	return v
}

// productTitle shows "die_cut_sticker" as "Die Cut Sticker", falling
// back from name to type.
func productTitle(it domain.OrderItem) string {
	name := it.ProductName
	if name == "" {
		name = it.ProductType
	}
	words := strings.Fields(strings.ReplaceAll(name, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// formatUSD renders money as "$1,234.56".
func formatUSD(m domain.Money) string {
	neg := m < 0
	if neg {
		m = -m
	}
	dollars, cents := int64(m)/100, int64(m)%100

	var groups []string
	for dollars >= 1000 {
		groups = append([]string{fmt.Sprintf("%03d", dollars%1000)}, groups...)
		dollars /= 1000
	}
	groups = append([]string{fmt.Sprintf("%d", dollars)}, groups...)

	s := fmt.Sprintf("$%s.%02d", strings.Join(groups, ","), cents)
	if neg {
		return "-" + s
	}
	return s
}

// staffContactSubject caps the echoed subject at 50 characters.
func staffContactSubject(subject string) string {
	r := []rune(subject)
	if len(r) > 50 {
		r = r[:50]
	}
	return "Contact Form: " + string(r)
}

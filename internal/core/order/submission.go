// Package order absorbs schema drift from evolving client payloads.
// Legacy and current clients name the same fields differently; the
// alias precedence lives here, in one auditable place, and nowhere
// else.
package order

import (
	"encoding/json"

	"github.com/stickerlab/backend/internal/core/domain"
)

type (
	// Submission is an inbound order payload in any supported
	// client schema. Every known alias has a field; resolution
	// happens through the accessor methods below.
	Submission struct {
		OrderID         string             `json:"orderId"`
		OrderDate       string             `json:"orderDate"`
		Status          string             `json:"status"`
		CustomerInfo    SubmissionCustomer `json:"customerInfo"`
		ShippingAddress *SubmissionAddress `json:"shippingAddress"`
		Items           []SubmissionItem   `json:"items"`
		Shipping        domain.Money       `json:"shipping"`
		Total           domain.Money       `json:"total"`
		PaymentInfo     json.RawMessage    `json:"paymentInfo"`
	}

	SubmissionCustomer struct {
		Name     string `json:"name"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`

		// Legacy clients nest the shipping address here.
		ShippingAddress *SubmissionAddress `json:"shippingAddress"`
	}

	SubmissionAddress struct {
		Street    string `json:"street"`
		Address   string `json:"address"`
		Apartment string `json:"apartment"`
		City      string `json:"city"`
		State     string `json:"state"`
		Zip       string `json:"zip"`
		Country   string `json:"country"`
	}

	SubmissionItem struct {
		ProductType string       `json:"productType"`
		ProductName string       `json:"productName"`
		Size        string       `json:"size"`
		Shape       string       `json:"shape"`
		Quantity    int          `json:"quantity"`
		UnitPrice   domain.Money `json:"unitPrice"`
		TotalPrice  domain.Money `json:"totalPrice"`

		ArtworkURL   string `json:"artworkUrl"`
		ImageURL     string `json:"imageUrl"`
		ArtworkS3URL string `json:"artworkS3Url"`

		PreviewURL      string `json:"previewUrl"`
		PreviewImageURL string `json:"previewImageUrl"`
		PreviewURLHTTPS string `json:"previewUrlHttps"`

		Instructions string `json:"instructions"`
	}
)

// DisplayName resolves the customer name aliases: name, then fullName.
func (c SubmissionCustomer) DisplayName() string {
	return firstNonEmpty(c.Name, c.FullName)
}

// Address resolves where the shipping address lives: top-level first,
// then nested under customerInfo. Never nil.
func (s Submission) Address() SubmissionAddress {
	if s.ShippingAddress != nil {
		return *s.ShippingAddress
	}
	if s.CustomerInfo.ShippingAddress != nil {
		return *s.CustomerInfo.ShippingAddress
	}
	return SubmissionAddress{}
}

// StreetLine resolves the street aliases: street, then address.
func (a SubmissionAddress) StreetLine() string {
	return firstNonEmpty(a.Street, a.Address)
}

// ArtworkSource resolves the artwork aliases:
// artworkUrl, imageUrl, artworkS3Url.
func (i SubmissionItem) ArtworkSource() string {
	return firstNonEmpty(i.ArtworkURL, i.ImageURL, i.ArtworkS3URL)
}

// PreviewSource resolves the preview aliases:
// previewUrl, previewImageUrl, previewUrlHttps.
func (i SubmissionItem) PreviewSource() string {
	return firstNonEmpty(i.PreviewURL, i.PreviewImageURL, i.PreviewURLHTTPS)
}

// Total resolves the item total: an explicit non-default totalPrice
// wins, otherwise unitPrice times quantity.
func (i SubmissionItem) Total() domain.Money {
	if i.TotalPrice != 0 {
		return i.TotalPrice
	}
	return i.UnitPrice.MulQty(i.Quantity)
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

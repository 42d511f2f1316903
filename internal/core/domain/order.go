package domain

import (
	"encoding/json"
	"time"
)

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "pending_payment"
	StatusProcessing     OrderStatus = "processing"
	StatusShipped        OrderStatus = "shipped"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

type (
	Customer struct {
		Name  string
		Email string
		Phone string
	}

	Address struct {
		Street    string
		Apartment string
		City      string
		State     string
		Zip       string
		Country   string
	}

	OrderItem struct {
		ProductType  string
		ProductName  string
		Size         string
		Shape        string
		Quantity     int
		UnitPrice    Money
		TotalPrice   Money
		ArtworkURL   string
		PreviewURL   string
		Instructions string
	}

	// Order is the canonical order record: every field-alias
	// ambiguity of the inbound payload already resolved. Never
	// mutated after creation in this service.
	Order struct {
		OrderID         string
		OrderDate       time.Time
		Status          OrderStatus
		Customer        Customer
		ShippingAddress Address
		Items           []OrderItem
		Subtotal        Money
		Shipping        Money
		Total           Money
		PaymentInfo     json.RawMessage
		CreatedAt       time.Time
		UpdatedAt       time.Time
	}
)

// PlacedOrder is the order-intake result. EmailQueued reports whether
// the confirmation trigger was handed off; a false value is a partial
// success, not a failure.
type PlacedOrder struct {
	Order       Order
	EmailQueued bool
}

// Contact is one contact-form submission.
type Contact struct {
	ContactID string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

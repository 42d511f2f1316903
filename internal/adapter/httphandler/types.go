package httphandler

import (
	"github.com/stickerlab/backend/internal/core/domain"
)

// Wire types for the public JSON API.

type quantityPrice struct {
	Quantity  int          `json:"quantity"`
	UnitPrice domain.Money `json:"unitPrice"`
}

type sizePricingResponse struct {
	Success     bool            `json:"success"`
	ProductType string          `json:"productType"`
	Size        string          `json:"size"`
	Pricing     []quantityPrice `json:"pricing"`
}

type matrixResponse struct {
	Success             bool                               `json:"success"`
	ProductType         string                             `json:"productType"`
	AvailableSizes      []string                           `json:"availableSizes"`
	AvailableQuantities []int                              `json:"availableQuantities"`
	PricingMatrix       map[string]map[string]domain.Money `json:"pricingMatrix"`
	PricingBySize       map[string][]quantityPrice         `json:"pricingBySize"`
}

type orderCreatedResponse struct {
	Success               bool         `json:"success"`
	Message               string       `json:"message"`
	OrderID               string       `json:"orderId"`
	OrderDate             string       `json:"orderDate"`
	Total                 domain.Money `json:"total"`
	Status                string       `json:"status"`
	EmailNotificationSent bool         `json:"emailNotificationSent"`
}

type orderSummary struct {
	OrderID   string       `json:"orderId"`
	OrderDate string       `json:"orderDate"`
	Status    string       `json:"status"`
	Items     int          `json:"items"`
	Total     domain.Money `json:"total"`
}

type ordersListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Orders  []orderSummary `json:"orders"`
}

type productResponse struct {
	ProductID      string   `json:"productId"`
	Category       string   `json:"category"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	BulletPoints   []string `json:"bulletPoints"`
	Images         []string `json:"images"`
	IsActive       bool     `json:"isActive"`
	AvailableSizes []string `json:"availableSizes,omitempty"`
	FixedSize      string   `json:"fixedSize,omitempty"`
}

type productsResponse struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Products []productResponse `json:"products"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ContactID string `json:"contactId"`
}

type errorResponse struct {
	Success    bool     `json:"success"`
	Error      string   `json:"error"`
	Details    []string `json:"details,omitempty"`
	ValidTypes []string `json:"validTypes,omitempty"`
}

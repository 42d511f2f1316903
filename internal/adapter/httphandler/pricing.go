package httphandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

// GET /api/pricing?type={sticker|magnet|fridge}&size=5x5

type PricingHandler struct {
	provider port.PricingProvider
}

func RegisterPricing(mux *http.ServeMux, provider port.PricingProvider) {
	h := PricingHandler{provider}
	mux.HandleFunc("GET /api/pricing", h.GetPricing)
}

func (h PricingHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	const op = "PricingHandler.GetPricing"
	log := slog.With("op", op)

	typeToken := r.URL.Query().Get("type")
	size := r.URL.Query().Get("size")

	if typeToken == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:      "Missing required parameter: type",
			ValidTypes: validTypeTokens,
		})
		return
	}

	if size != "" {
		h.getSizePricing(w, r, typeToken, size)
		return
	}

	matrix, err := h.provider.CategoryMatrix(r.Context(), typeToken)
	if err != nil {
		h.writeLookupError(w, log, err, typeToken, size)
		return
	}

	writeJSON(w, http.StatusOK, toMatrixResponse(typeToken, matrix))
}

func (h PricingHandler) getSizePricing(
	w http.ResponseWriter, r *http.Request, typeToken, size string,
) {
	const op = "PricingHandler.getSizePricing"
	log := slog.With("op", op)

	prices, err := h.provider.SizePricing(r.Context(), typeToken, size)
	if err != nil {
		h.writeLookupError(w, log, err, typeToken, size)
		return
	}

	resp := sizePricingResponse{
		Success:     true,
		ProductType: typeToken,
		Size:        size,
		Pricing:     toQuantityPrices(prices),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h PricingHandler) writeLookupError(
	w http.ResponseWriter, log *slog.Logger, err error, typeToken, size string,
) {
	switch {
	case errors.Is(err, domain.ErrUnknownCategory):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:      fmt.Sprintf("Invalid product type: %s", typeToken),
			ValidTypes: validTypeTokens,
		})
	case errors.Is(err, domain.ErrCategoryEmpty):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: fmt.Sprintf("No pricing data found for type: %s", typeToken),
		})
	case errors.Is(err, domain.ErrSizeNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: fmt.Sprintf("No pricing found for size: %s", size),
		})
	default:
		log.Error("pricing lookup failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Database error occurred")
	}
}

func toQuantityPrices(prices []domain.QuantityPrice) []quantityPrice {
	qps := make([]quantityPrice, len(prices))
	for i, p := range prices {
		qps[i] = quantityPrice{Quantity: p.Quantity, UnitPrice: p.UnitPrice}
	}
	return qps
}

func toMatrixResponse(typeToken string, m domain.PriceMatrix) matrixResponse {
	resp := matrixResponse{
		Success:             true,
		ProductType:         typeToken,
		AvailableSizes:      m.Sizes,
		AvailableQuantities: m.Quantities,
		PricingMatrix:       make(map[string]map[string]domain.Money, len(m.BySize)),
		PricingBySize:       make(map[string][]quantityPrice, len(m.BySize)),
	}
	for size, prices := range m.BySize {
		cells := make(map[string]domain.Money, len(prices))
		for _, p := range prices {
			cells[strconv.Itoa(p.Quantity)] = p.UnitPrice
		}
		resp.PricingMatrix[size] = cells
		resp.PricingBySize[size] = toQuantityPrices(prices)
	}
	return resp
}

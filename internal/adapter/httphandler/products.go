package httphandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

// GET /api/products?type={sticker|magnet|fridge}

type ProductsHandler struct {
	provider port.ProductsProvider
}

func RegisterProducts(mux *http.ServeMux, provider port.ProductsProvider) {
	h := ProductsHandler{provider}
	mux.HandleFunc("GET /api/products", h.GetProducts)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProducts"
	log := slog.With("op", op)

	typeToken := r.URL.Query().Get("type")

	products, err := h.provider.Products(r.Context(), typeToken)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: fmt.Sprintf(
					"Invalid product type: %s", typeToken,
				),
				ValidTypes: validTypeTokens,
			})
			return
		}
		log.Error("failed to read products", "err", err)
		writeError(w, http.StatusInternalServerError, "Database error occurred")
		return
	}

	resp := productsResponse{
		Success:  true,
		Count:    len(products),
		Products: make([]productResponse, len(products)),
	}
	for i, p := range products {
		resp.Products[i] = productResponse{
			ProductID:      p.ProductID,
			Category:       string(p.Category),
			Name:           p.Name,
			Description:    p.Description,
			BulletPoints:   p.BulletPoints,
			Images:         p.Images,
			IsActive:       p.IsActive,
			AvailableSizes: p.AvailableSizes,
			FixedSize:      p.FixedSize,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

// POST /api/contact JSON {name, email, subject, message}

type ContactHandler struct {
	receiver port.ContactReceiver
}

func RegisterContact(mux *http.ServeMux, receiver port.ContactReceiver) {
	h := ContactHandler{receiver}
	mux.HandleFunc("POST /api/contact", h.PostContact)
}

func (h ContactHandler) PostContact(w http.ResponseWriter, r *http.Request) {
	const op = "ContactHandler.PostContact"
	log := slog.With("op", op)

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}

	contact, err := h.receiver.ReceiveContact(r.Context(), domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Validation failed",
				Details: vErr.Violations,
			})
			return
		}
		log.Error("failed to process contact", "err", err)
		writeError(w, http.StatusInternalServerError,
			"Failed to process your message. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{
		Success:   true,
		Message:   "Your message has been received. We will get back to you soon!",
		ContactID: contact.ContactID,
	})
}

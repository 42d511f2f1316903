package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/order"
	"github.com/stickerlab/backend/internal/core/port"
)

const maxContactFieldLen = 5000

var _ port.ContactReceiver = (*ContactService)(nil)

// ContactService handles contact-form submissions: validate, sanitize,
// store, notify staff and auto-reply to the sender.
type ContactService struct {
	storage  port.ContactsStorage
	sender   port.EmailSender
	renderer port.EmailRenderer
	staff    []string
	now      func() time.Time
}

func NewContact(
	storage port.ContactsStorage,
	sender port.EmailSender,
	renderer port.EmailRenderer,
	staff []string,
) ContactService {
	return ContactService{storage, sender, renderer, staff, time.Now}
}

func (s ContactService) ReceiveContact(
	ctx context.Context, c domain.Contact,
) (domain.Contact, error) {
	const op = "ContactService.ReceiveContact"
	log := slog.With("op", op)

	if violations := validateContact(c); len(violations) > 0 {
		return domain.Contact{}, fmt.Errorf(
			"%s: %w", op, domain.ValidationError{Violations: violations},
		)
	}

	c = sanitizeContact(c)
	c.ContactID = newContactID()
	c.CreatedAt = s.now().UTC()

	// Storing is best-effort: a storage hiccup must not lose the
	// staff notification.
	if err := s.storage.SaveContact(ctx, c); err != nil {
		log.Error("failed to store contact", "err", err)
	}

	msg, err := s.renderer.ContactNotification(c)
	if err != nil {
		return domain.Contact{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.sender.Send(ctx, s.staff, msg); err != nil {
		return domain.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	if reply, err := s.renderer.ContactAutoReply(c); err == nil {
		if err := s.sender.Send(ctx, []string{c.Email}, reply); err != nil {
			log.Error("failed to send auto-reply", "err", err)
		}
	}

	log.Info("contact received", "contactId", c.ContactID)
	return c, nil
}

func validateContact(c domain.Contact) []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "Missing required field: name")
	}
	switch email := strings.TrimSpace(c.Email); {
	case email == "":
		errs = append(errs, "Missing required field: email")
	case !order.ValidEmail(email):
		errs = append(errs, "Invalid email format")
	}
	if strings.TrimSpace(c.Subject) == "" {
		errs = append(errs, "Missing required field: subject")
	}
	if strings.TrimSpace(c.Message) == "" {
		errs = append(errs, "Missing required field: message")
	}
	return errs
}

func sanitizeContact(c domain.Contact) domain.Contact {
	c.Name = sanitize(c.Name)
	c.Subject = sanitize(c.Subject)
	c.Message = sanitize(c.Message)
	c.Email = strings.TrimSpace(c.Email)
	return c
}

func sanitize(text string) string {
	text = strings.TrimSpace(text)
	if len(text) > maxContactFieldLen {
		text = text[:maxContactFieldLen]
	}
	return html.EscapeString(text)
}

func newContactID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return "CONTACT-" + strings.ToUpper(hex.EncodeToString(b[:]))
}

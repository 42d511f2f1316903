package storage

import (
	"context"
	"fmt"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.ContactsStorage = (*ContactsRepository)(nil)

type ContactsRepository struct {
	sqldb sqldb
}

func NewContactsRepository(sqldb sqldb) ContactsRepository {
	return ContactsRepository{sqldb}
}

func (r ContactsRepository) SaveContact(
	ctx context.Context, c domain.Contact,
) error {
	const op = "ContactsRepository.SaveContact"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO contacts (contact_id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`

	_, err := r.sqldb.ExecContext(ctx, query,
		c.ContactID, c.Name, c.Email, c.Subject, c.Message, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

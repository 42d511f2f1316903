package storage

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.PricingReader = (*PricingRepository)(nil)
var _ port.PricingWriter = (*PricingRepository)(nil)

// PricingRepository keeps the price matrix keyed by
// (category, size, quantity).
type PricingRepository struct {
	sqldb sqldb
}

func NewPricingRepository(sqldb sqldb) PricingRepository {
	return PricingRepository{sqldb}
}

// ReplaceCategory swaps a whole category in one transaction. Entries
// are inserted in chunks of maxBatch rows.
func (r PricingRepository) ReplaceCategory(
	ctx context.Context, category domain.Category, entries []domain.PriceEntry,
) (replaceErr error) {
	const op = "PricingRepository.ReplaceCategory"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if replaceErr == nil {
			if err := tx.Commit(); err != nil {
				replaceErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}
		if err := tx.Rollback(); err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM pricing WHERE category = $1;`, string(category),
	)
	if err != nil {
		return fmt.Errorf("%s: failed to clear category: %w", op, err)
	}

	for chunk := range slices.Chunk(entries, maxBatch) {
		query, args := buildPricingInsert(category, chunk)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: failed to insert batch: %w", op, err)
		}
	}

	return nil
}

func buildPricingInsert(
	category domain.Category, entries []domain.PriceEntry,
) (string, []any) {
	var b strings.Builder
	b.WriteString(
		`INSERT INTO pricing (category, size, quantity, unit_price_cents) VALUES `,
	)

	args := make([]any, 0, len(entries)*4)
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * 4
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4)
		args = append(args,
			string(category), e.Size, e.Quantity, int64(e.UnitPrice),
		)
	}
	b.WriteString(";")
	return b.String(), args
}

func (r PricingRepository) SizePrices(
	ctx context.Context, category domain.Category, size string,
) ([]domain.QuantityPrice, error) {
	const op = "PricingRepository.SizePrices"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT quantity, unit_price_cents
		FROM pricing
		WHERE category = $1 AND size = $2
		ORDER BY quantity ASC;`

	rows, err := r.sqldb.QueryContext(ctx, query, string(category), size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var prices []domain.QuantityPrice
	for rows.Next() {
		var (
			qp    domain.QuantityPrice
			cents int64
		)
		if err := rows.Scan(&qp.Quantity, &cents); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		qp.UnitPrice = domain.Money(cents)
		prices = append(prices, qp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return prices, nil
}

func (r PricingRepository) CategoryEntries(
	ctx context.Context, category domain.Category,
) ([]domain.PriceEntry, error) {
	const op = "PricingRepository.CategoryEntries"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT size, quantity, unit_price_cents
		FROM pricing
		WHERE category = $1;`

	rows, err := r.sqldb.QueryContext(ctx, query, string(category))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var entries []domain.PriceEntry
	for rows.Next() {
		var (
			e     domain.PriceEntry
			cents int64
		)
		if err := rows.Scan(&e.Size, &e.Quantity, &cents); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		e.Category = category
		e.UnitPrice = domain.Money(cents)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.ProductsStorage = (*ProductsRepository)(nil)

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

// ReplaceProducts swaps the whole catalog in one transaction, in
// chunks of maxBatch rows.
func (r ProductsRepository) ReplaceProducts(
	ctx context.Context, products []domain.Product,
) (replaceErr error) {
	const op = "ProductsRepository.ReplaceProducts"
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

	if _, err := tx.ExecContext(ctx, `DELETE FROM products;`); err != nil {
		return fmt.Errorf("%s: failed to clear products: %w", op, err)
	}

	for chunk := range slices.Chunk(products, maxBatch) {
		query, args, err := buildProductsInsert(chunk)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: failed to insert batch: %w", op, err)
		}
	}

	return nil
}

func buildProductsInsert(products []domain.Product) (string, []any, error) {
	var b strings.Builder
	b.WriteString(`INSERT INTO products (
		product_id, category, name, description,
		bullet_points, images, is_active, available_sizes, fixed_size
	) VALUES `)

	args := make([]any, 0, len(products)*9)
	for i, p := range products {
		if i > 0 {
			b.WriteString(", ")
		}
		n := i * 9
		fmt.Fprintf(&b, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			n+1, n+2, n+3, n+4, n+5, n+6, n+7, n+8, n+9)

		bulletsB, err := json.Marshal(p.BulletPoints)
		if err != nil {
			return "", nil, err
		}
		imagesB, err := json.Marshal(p.Images)
		if err != nil {
			return "", nil, err
		}
		sizesB, err := json.Marshal(p.AvailableSizes)
		if err != nil {
			return "", nil, err
		}

		args = append(args,
			p.ProductID, string(p.Category), p.Name, p.Description,
			string(bulletsB), string(imagesB), p.IsActive,
			string(sizesB), p.FixedSize,
		)
	}
	b.WriteString(";")
	return b.String(), args, nil
}

func (r ProductsRepository) Products(
	ctx context.Context,
) ([]domain.Product, error) {
	const op = "ProductsRepository.Products"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			product_id, category, name, description,
			bullet_points, images, is_active, available_sizes, fixed_size
		FROM products;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var (
			p                        domain.Product
			category                 string
			bulletsS, imagesS, sizes string
		)
		err := rows.Scan(
			&p.ProductID, &category, &p.Name, &p.Description,
			&bulletsS, &imagesS, &p.IsActive, &sizes, &p.FixedSize,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.Category = domain.Category(category)

		if err := json.Unmarshal([]byte(bulletsS), &p.BulletPoints); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal([]byte(imagesS), &p.Images); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := json.Unmarshal([]byte(sizes), &p.AvailableSizes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return products, nil
}

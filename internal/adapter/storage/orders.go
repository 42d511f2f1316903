package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.OrdersStorage = (*OrdersRepository)(nil)

type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

// SaveOrder writes the canonical order once. Orders are immutable
// here, so a duplicate orderId is an error, not an upsert.
func (r OrdersRepository) SaveOrder(ctx context.Context, o domain.Order) error {
	const op = "OrdersRepository.SaveOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	itemsB, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	paymentB := []byte(o.PaymentInfo)
	if len(paymentB) == 0 {
		paymentB = []byte("{}")
	}

	query := `
		INSERT INTO orders (
			order_id, order_date, status,
			customer_name, customer_email, customer_phone,
			street, apartment, city, state, zip, country,
			items, subtotal_cents, shipping_cents, total_cents,
			payment_info, created_at, updated_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		);`

	_, err = r.sqldb.ExecContext(ctx, query,
		o.OrderID, o.OrderDate, string(o.Status),
		o.Customer.Name, o.Customer.Email, o.Customer.Phone,
		o.ShippingAddress.Street, o.ShippingAddress.Apartment,
		o.ShippingAddress.City, o.ShippingAddress.State,
		o.ShippingAddress.Zip, o.ShippingAddress.Country,
		string(itemsB), int64(o.Subtotal), int64(o.Shipping), int64(o.Total),
		string(paymentB), o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r OrdersRepository) ReadOrder(
	ctx context.Context, orderID string,
) (domain.Order, error) {
	const op = "OrdersRepository.ReadOrder"

	row := r.sqldb.QueryRowContext(ctx, selectOrders+`WHERE order_id = $1;`, orderID)
	o, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrOrderNotFound)
		}
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return o, nil
}

// OrdersByEmail looks orders up through the customer_email index.
func (r OrdersRepository) OrdersByEmail(
	ctx context.Context, email string,
) ([]domain.Order, error) {
	const op = "OrdersRepository.OrdersByEmail"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.sqldb.QueryContext(ctx,
		selectOrders+`WHERE customer_email = $1 ORDER BY order_date DESC;`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

const selectOrders = `
	SELECT
		order_id, order_date, status,
		customer_name, customer_email, customer_phone,
		street, apartment, city, state, zip, country,
		items, subtotal_cents, shipping_cents, total_cents,
		payment_info, created_at, updated_at
	FROM orders
`

func scanOrder(scan func(...any) error) (domain.Order, error) {
	var (
		o                         domain.Order
		status                    string
		itemsS, paymentS          string
		subtotal, shipping, total int64
	)
	err := scan(
		&o.OrderID, &o.OrderDate, &status,
		&o.Customer.Name, &o.Customer.Email, &o.Customer.Phone,
		&o.ShippingAddress.Street, &o.ShippingAddress.Apartment,
		&o.ShippingAddress.City, &o.ShippingAddress.State,
		&o.ShippingAddress.Zip, &o.ShippingAddress.Country,
		&itemsS, &subtotal, &shipping, &total,
		&paymentS, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return domain.Order{}, err
	}

	o.Status = domain.OrderStatus(status)
	o.Subtotal = domain.Money(subtotal)
	o.Shipping = domain.Money(shipping)
	o.Total = domain.Money(total)
	o.PaymentInfo = json.RawMessage(paymentS)

	if err := json.Unmarshal([]byte(itemsS), &o.Items); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

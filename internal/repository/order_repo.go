package repository

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

const orderColumns = `
	order_id, order_number, customer_id, payment_method, payment_status,
	status, total, delivery_address, postal_code, created_at, updated_at, deleted_at
`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.OrderID, &o.OrderNumber, &o.CustomerID, &o.PaymentMethod,
		&o.PaymentStatus, &o.Status, &o.Total, &o.DeliveryAddress,
		&o.PostalCode, &o.CreatedAt, &o.UpdatedAt, &o.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id=$1`
	return scanOrder(r.DB.QueryRow(ctx, query, orderID))
}

// GetByOrderNumber returns the order for a business order number, nil when
// unknown.
func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number=$1 AND deleted_at IS NULL`
	o, err := scanOrder(r.DB.QueryRow(ctx, query, orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}

// ListByCustomer returns placed orders, newest first. Carts are excluded.
func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_id=$1 AND status <> 'open' AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, nil
}

// PlaceOrderTx finalizes a cart into a placed order inside a transaction.
func (r *OrderRepository) PlaceOrderTx(
	ctx context.Context,
	tx pgx.Tx,
	orderID int64,
	orderNumber string,
	paymentMethod string,
	total float64,
	address, postalCode string,
) error {
	query := `
		UPDATE orders
		SET order_number=$2, payment_method=$3, total=$4,
		    delivery_address=$5, postal_code=$6,
		    status='pending', payment_status='pending', updated_at=NOW()
		WHERE order_id=$1 AND status='open'
	`
	tag, err := tx.Exec(ctx, query, orderID, orderNumber, paymentMethod, total, address, postalCode)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order is not an open cart")
	}
	return nil
}

// MarkCardOrderPaid applies a gateway "approved" event: payment_status paid,
// order confirmed, updated_at refreshed. Only a pending card order can
// match; with an empty orderNumber the newest one is targeted, which is the
// documented best-effort fallback for gateways that omit the correlation
// key. Returns the number of rows updated (0 or 1).
func (r *OrderRepository) MarkCardOrderPaid(ctx context.Context, orderNumber string) (int64, error) {
	query := `
		UPDATE orders
		SET payment_status='paid', status='confirmed', updated_at=NOW()
		WHERE order_id = (
			SELECT order_id FROM orders
			WHERE payment_method='card' AND payment_status='pending'
			  AND deleted_at IS NULL
			  AND ($1 = '' OR order_number = $1)
			ORDER BY created_at DESC
			LIMIT 1
		)
	`
	tag, err := r.DB.Exec(ctx, query, orderNumber)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkCardOrderFailed applies a declined/rejected/failed event. Same
// targeting as MarkCardOrderPaid; the order lifecycle status is left alone.
func (r *OrderRepository) MarkCardOrderFailed(ctx context.Context, orderNumber string) (int64, error) {
	query := `
		UPDATE orders
		SET payment_status='failed', updated_at=NOW()
		WHERE order_id = (
			SELECT order_id FROM orders
			WHERE payment_method='card' AND payment_status='pending'
			  AND deleted_at IS NULL
			  AND ($1 = '' OR order_number = $1)
			ORDER BY created_at DESC
			LIMIT 1
		)
	`
	tag, err := r.DB.Exec(ctx, query, orderNumber)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// MarkDelivered is used once a driver uploads the proof-of-delivery photo.
func (r *OrderRepository) MarkDelivered(ctx context.Context, orderID int64) error {
	query := `UPDATE orders SET status='delivered', updated_at=NOW() WHERE order_id=$1 AND status='confirmed'`
	_, err := r.DB.Exec(ctx, query, orderID)
	return err
}

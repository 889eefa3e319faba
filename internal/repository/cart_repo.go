package repository

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

// FindOpenOrder finds the customer's cart (status 'open', total still NULL).
func (r *CartRepository) FindOpenOrder(ctx context.Context, customerID int64) (int64, error) {
	var orderID int64
	query := `
		SELECT order_id FROM orders
		WHERE customer_id=$1 AND status='open' AND deleted_at IS NULL
		LIMIT 1
	`
	if err := r.DB.QueryRow(ctx, query, customerID).Scan(&orderID); err != nil {
		return 0, err
	}
	return orderID, nil
}

// CreateOpenOrder creates a fresh cart row and returns its order_id.
func (r *CartRepository) CreateOpenOrder(ctx context.Context, customerID int64) (int64, error) {
	var orderID int64
	query := `
		INSERT INTO orders (customer_id, status, payment_status, created_at, updated_at)
		VALUES ($1, 'open', 'pending', NOW(), NOW())
		RETURNING order_id
	`
	if err := r.DB.QueryRow(ctx, query, customerID).Scan(&orderID); err != nil {
		return 0, err
	}
	return orderID, nil
}

// GetProductInfo gets the current name and price for a product.
func (r *CartRepository) GetProductInfo(ctx context.Context, productID int64) (name string, price float64, err error) {
	query := `SELECT name, price FROM products WHERE product_id=$1 AND active AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, productID).Scan(&name, &price); err != nil {
		return "", 0, errors.New("product not found")
	}
	return name, price, nil
}

// AddOrIncrementItem inserts an item or bumps its quantity.
func (r *CartRepository) AddOrIncrementItem(
	ctx context.Context,
	orderID, productID int64,
	qty int,
	priceAtPurchase float64,
) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (order_id, product_id)
		DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity
	`
	_, err := r.DB.Exec(ctx, query, orderID, productID, qty, priceAtPurchase)
	return err
}

// SetItemQuantity sets the exact quantity for an item.
func (r *CartRepository) SetItemQuantity(ctx context.Context, orderID, productID int64, qty int) error {
	query := `UPDATE order_items SET quantity=$1 WHERE order_id=$2 AND product_id=$3 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, qty, orderID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, orderID, productID int64) error {
	query := `DELETE FROM order_items WHERE order_id=$1 AND product_id=$2`
	_, err := r.DB.Exec(ctx, query, orderID, productID)
	return err
}

func (r *CartRepository) ClearItems(ctx context.Context, orderID int64) error {
	query := `DELETE FROM order_items WHERE order_id=$1`
	_, err := r.DB.Exec(ctx, query, orderID)
	return err
}

// GetItems returns cart items with their product names, plus the total.
func (r *CartRepository) GetItems(ctx context.Context, orderID int64) ([]model.CartItem, float64, error) {
	query := `
		SELECT oi.order_item_id, oi.product_id, p.name, p.size_grams, oi.quantity, oi.price_at_purchase
		FROM order_items oi
		JOIN products p ON p.product_id = oi.product_id
		WHERE oi.order_id=$1 AND oi.deleted_at IS NULL
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.CartItem
	var total float64
	for rows.Next() {
		var it model.CartItem
		if err := rows.Scan(&it.OrderItemID, &it.ProductID, &it.Name, &it.SizeGrams, &it.Quantity, &it.PriceAtPurchase); err != nil {
			return nil, 0, err
		}
		it.Subtotal = it.PriceAtPurchase * float64(it.Quantity)
		items = append(items, it)
		total += it.Subtotal
	}
	return items, total, nil
}

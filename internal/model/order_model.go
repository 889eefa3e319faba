package model

import "time"

// Order lifecycle statuses. An order with StatusOpen and Total == nil is the
// customer's cart; checkout moves it to StatusPending.
const (
	OrderStatusOpen      = "open"
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"

	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// Order represents a row in the orders table.
type Order struct {
	OrderID         int64      `json:"order_id"`
	OrderNumber     *string    `json:"order_number,omitempty"`
	CustomerID      int64      `json:"customer_id"`
	PaymentMethod   *string    `json:"payment_method,omitempty"`
	PaymentStatus   string     `json:"payment_status"`
	Status          string     `json:"status"`
	Total           *float64   `json:"total,omitempty"`
	DeliveryAddress *string    `json:"delivery_address,omitempty"`
	PostalCode      *string    `json:"postal_code,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// OrderItem represents a row in the order_items table.
type OrderItem struct {
	OrderItemID     int64      `json:"order_item_id"`
	OrderID         int64      `json:"order_id"`
	ProductID       int64      `json:"product_id"`
	Quantity        int        `json:"quantity"`
	PriceAtPurchase float64    `json:"price_at_purchase"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// CartItem is what the API exposes (joined with products.name).
type CartItem struct {
	OrderItemID     int64   `json:"order_item_id"`
	ProductID       int64   `json:"product_id"`
	Name            string  `json:"name"`
	SizeGrams       int     `json:"size_grams"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
	Subtotal        float64 `json:"subtotal"`
}

// CartResponse is returned when calling GET /cart.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

package model

import "time"

type Customer struct {
	CustomerID int64      `json:"customer_id"`
	AccountID  int64      `json:"account_id"`
	Email      string     `json:"email"`
	Address    *string    `json:"address,omitempty"`
	PostalCode *string    `json:"postal_code,omitempty"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

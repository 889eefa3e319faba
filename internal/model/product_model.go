package model

import "time"

// Product is one BARF recipe in a given presentation size.
type Product struct {
	ProductID int64      `json:"product_id"`
	Name      string     `json:"name"`
	Protein   string     `json:"protein"`
	SizeGrams int        `json:"size_grams"`
	Price     float64    `json:"price"`
	Active    bool       `json:"active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

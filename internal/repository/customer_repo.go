package repository

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// GetCustomerID resolves an account id to its customer row.
func (r *CustomerRepository) GetCustomerID(ctx context.Context, accountID int64) (int64, error) {
	var cid int64
	query := `SELECT customer_id FROM customers WHERE account_id=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, accountID).Scan(&cid); err != nil {
		return 0, errors.New("customer not found")
	}
	return cid, nil
}

func (r *CustomerRepository) Create(ctx context.Context, accountID int64) (int64, error) {
	var cid int64
	query := `INSERT INTO customers (account_id, created_at) VALUES ($1, NOW()) RETURNING customer_id`
	if err := r.DB.QueryRow(ctx, query, accountID).Scan(&cid); err != nil {
		return 0, err
	}
	return cid, nil
}

func (r *CustomerRepository) GetByAccountID(ctx context.Context, accountID int64) (*model.Customer, error) {
	var c model.Customer
	query := `
		SELECT c.customer_id, c.account_id, a.email, c.address, c.postal_code, c.created_at, c.deleted_at
		FROM customers c
		JOIN accounts a ON a.account_id = c.account_id
		WHERE c.account_id=$1 AND c.deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, query, accountID).Scan(
		&c.CustomerID, &c.AccountID, &c.Email, &c.Address,
		&c.PostalCode, &c.CreatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, errors.New("customer not found")
	}
	return &c, nil
}

// UpdateProfile sets the delivery address and postal code.
func (r *CustomerRepository) UpdateProfile(
	ctx context.Context,
	customerID int64,
	address, postalCode string,
) error {
	query := `UPDATE customers SET address=$1, postal_code=$2 WHERE customer_id=$3 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, address, postalCode, customerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("customer not found")
	}
	return nil
}

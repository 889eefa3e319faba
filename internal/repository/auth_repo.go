package repository

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepository struct {
	DB *pgxpool.Pool
}

func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{DB: db}
}

// CreateAccount inserts a new account row and returns its id.
func (r *AuthRepository) CreateAccount(
	ctx context.Context,
	email, passwordHash, role string,
	fullName, phone *string,
) (int64, error) {
	var id int64
	query := `
		INSERT INTO accounts (email, password_hash, role, full_name, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING account_id
	`
	if err := r.DB.QueryRow(ctx, query, email, passwordHash, role, fullName, phone).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// GetByEmail returns the account for a login attempt, nil when unknown.
func (r *AuthRepository) GetByEmail(ctx context.Context, email string) (*model.Account, error) {
	var a model.Account
	query := `
		SELECT account_id, email, password_hash, role, full_name, phone, created_at, deleted_at
		FROM accounts WHERE email=$1
	`
	err := r.DB.QueryRow(ctx, query, email).Scan(
		&a.AccountID, &a.Email, &a.PasswordHash, &a.Role,
		&a.FullName, &a.Phone, &a.CreatedAt, &a.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AuthRepository) GetByID(ctx context.Context, accountID int64) (*model.Account, error) {
	var a model.Account
	query := `
		SELECT account_id, email, password_hash, role, full_name, phone, created_at, deleted_at
		FROM accounts WHERE account_id=$1
	`
	err := r.DB.QueryRow(ctx, query, accountID).Scan(
		&a.AccountID, &a.Email, &a.PasswordHash, &a.Role,
		&a.FullName, &a.Phone, &a.CreatedAt, &a.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

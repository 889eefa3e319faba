package repository

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

// ListActive returns the purchasable catalog ordered by protein then size.
func (r *ProductRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT product_id, name, protein, size_grams, price, active, created_at, deleted_at
		FROM products
		WHERE active AND deleted_at IS NULL
		ORDER BY protein, size_grams
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(
			&p.ProductID, &p.Name, &p.Protein, &p.SizeGrams,
			&p.Price, &p.Active, &p.CreatedAt, &p.DeletedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, productID int64) (*model.Product, error) {
	var p model.Product
	query := `
		SELECT product_id, name, protein, size_grams, price, active, created_at, deleted_at
		FROM products
		WHERE product_id=$1 AND deleted_at IS NULL
	`
	err := r.DB.QueryRow(ctx, query, productID).Scan(
		&p.ProductID, &p.Name, &p.Protein, &p.SizeGrams,
		&p.Price, &p.Active, &p.CreatedAt, &p.DeletedAt,
	)
	if err != nil {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

// FindSmallestCovering returns the smallest active pack that lasts at least
// minDays at the given daily ration, or the largest pack when none does.
func (r *ProductRepository) FindSmallestCovering(
	ctx context.Context,
	dailyGrams int,
	minDays int,
) (*model.Product, error) {
	var p model.Product
	query := `
		SELECT product_id, name, protein, size_grams, price, active, created_at, deleted_at
		FROM products
		WHERE active AND deleted_at IS NULL AND size_grams >= $1 * $2
		ORDER BY size_grams ASC
		LIMIT 1
	`
	err := r.DB.QueryRow(ctx, query, dailyGrams, minDays).Scan(
		&p.ProductID, &p.Name, &p.Protein, &p.SizeGrams,
		&p.Price, &p.Active, &p.CreatedAt, &p.DeletedAt,
	)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// nothing big enough, fall back to the largest pack
	query = `
		SELECT product_id, name, protein, size_grams, price, active, created_at, deleted_at
		FROM products
		WHERE active AND deleted_at IS NULL
		ORDER BY size_grams DESC
		LIMIT 1
	`
	err = r.DB.QueryRow(ctx, query).Scan(
		&p.ProductID, &p.Name, &p.Protein, &p.SizeGrams,
		&p.Price, &p.Active, &p.CreatedAt, &p.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

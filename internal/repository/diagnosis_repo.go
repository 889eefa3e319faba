package repository

import (
	"context"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DiagnosisRepository struct {
	DB *pgxpool.Pool
}

func NewDiagnosisRepository(db *pgxpool.Pool) *DiagnosisRepository {
	return &DiagnosisRepository{DB: db}
}

func (r *DiagnosisRepository) CreateSession(
	ctx context.Context,
	customerID *int64,
	profile model.PetProfile,
	dailyGrams int,
	productID *int64,
) (int64, error) {
	var id int64
	query := `
		INSERT INTO diagnosis_sessions
			(customer_id, species, weight_kg, age_months, activity, daily_grams, product_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING session_id
	`
	err := r.DB.QueryRow(
		ctx, query,
		customerID, profile.Species, profile.WeightKg,
		profile.AgeMonths, profile.Activity, dailyGrams, productID,
	).Scan(&id)
	return id, err
}

func (r *DiagnosisRepository) GetSession(ctx context.Context, sessionID int64) (*model.DiagnosisSession, error) {
	var s model.DiagnosisSession
	query := `
		SELECT session_id, customer_id, species, weight_kg, age_months,
		       activity, daily_grams, product_id, created_at
		FROM diagnosis_sessions
		WHERE session_id=$1
	`
	err := r.DB.QueryRow(ctx, query, sessionID).Scan(
		&s.SessionID, &s.CustomerID,
		&s.Profile.Species, &s.Profile.WeightKg, &s.Profile.AgeMonths,
		&s.Profile.Activity, &s.DailyGrams, &s.ProductID, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

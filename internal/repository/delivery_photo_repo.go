package repository

import (
	"context"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliveryPhotoRepository struct {
	DB *pgxpool.Pool
}

func NewDeliveryPhotoRepository(db *pgxpool.Pool) *DeliveryPhotoRepository {
	return &DeliveryPhotoRepository{DB: db}
}

func (r *DeliveryPhotoRepository) Create(
	ctx context.Context,
	orderID int64,
	objectKey, publicURL string,
	driverAccountID int64,
) (int64, error) {
	var id int64
	query := `
		INSERT INTO delivery_photos (order_id, object_key, public_url, driver_account_id, taken_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING photo_id
	`
	err := r.DB.QueryRow(ctx, query, orderID, objectKey, publicURL, driverAccountID).Scan(&id)
	return id, err
}

func (r *DeliveryPhotoRepository) ListByOrder(ctx context.Context, orderID int64) ([]model.DeliveryPhoto, error) {
	query := `
		SELECT photo_id, order_id, object_key, public_url, driver_account_id, taken_at
		FROM delivery_photos
		WHERE order_id=$1
		ORDER BY taken_at DESC
	`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.DeliveryPhoto
	for rows.Next() {
		var p model.DeliveryPhoto
		if err := rows.Scan(&p.PhotoID, &p.OrderID, &p.ObjectKey, &p.PublicURL, &p.DriverAccountID, &p.TakenAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneRepository struct {
	DB *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) *ZoneRepository {
	return &ZoneRepository{DB: db}
}

// FindByPostalCode returns the delivery zone covering a postal code, or nil
// when we do not deliver there.
func (r *ZoneRepository) FindByPostalCode(ctx context.Context, postalCode string) (*model.Zone, error) {
	var z model.Zone
	query := `
		SELECT z.zone_id, z.name, z.delivery_day, z.fee
		FROM zones z
		JOIN zone_postal_codes zpc ON zpc.zone_id = z.zone_id
		WHERE zpc.postal_code = $1
		LIMIT 1
	`
	err := r.DB.QueryRow(ctx, query, postalCode).Scan(&z.ZoneID, &z.Name, &z.DeliveryDay, &z.Fee)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &z, nil
}

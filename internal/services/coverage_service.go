package services

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
)

// ZoneFinder is the slice of the zone store the coverage checker needs.
type ZoneFinder interface {
	FindByPostalCode(ctx context.Context, postalCode string) (*model.Zone, error)
}

type CoverageService struct {
	Zones ZoneFinder
}

func NewCoverageService(zones ZoneFinder) *CoverageService {
	return &CoverageService{Zones: zones}
}

// Check says whether we deliver to a postal code and, when we do, which
// zone it belongs to.
func (s *CoverageService) Check(ctx context.Context, postalCode string) (*model.CoverageResult, error) {
	if len(postalCode) != 5 {
		return nil, errors.New("postal code must be 5 digits")
	}
	for _, r := range postalCode {
		if r < '0' || r > '9' {
			return nil, errors.New("postal code must be 5 digits")
		}
	}

	zone, err := s.Zones.FindByPostalCode(ctx, postalCode)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return &model.CoverageResult{Covered: false}, nil
	}
	return &model.CoverageResult{Covered: true, Zone: zone}, nil
}

package services

import (
	"context"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/repository"
)

type CustomerService struct {
	Repo *repository.CustomerRepository
}

func NewCustomerService(r *repository.CustomerRepository) *CustomerService {
	return &CustomerService{Repo: r}
}

func (s *CustomerService) GetProfile(ctx context.Context, accountID int64) (*model.Customer, error) {
	return s.Repo.GetByAccountID(ctx, accountID)
}

func (s *CustomerService) UpdateProfile(ctx context.Context, accountID int64, address, postalCode string) error {
	cid, err := s.Repo.GetCustomerID(ctx, accountID)
	if err != nil {
		return err
	}
	return s.Repo.UpdateProfile(ctx, cid, address, postalCode)
}

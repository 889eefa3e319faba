package services

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/middleware"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	AuthRepo     *repository.AuthRepository
	CustomerRepo *repository.CustomerRepository
	Validator    EmailValidator
	Auth         *middleware.Auth
}

func NewAuthService(
	ar *repository.AuthRepository,
	cr *repository.CustomerRepository,
	validator EmailValidator,
	auth *middleware.Auth,
) *AuthService {
	return &AuthService{
		AuthRepo:     ar,
		CustomerRepo: cr,
		Validator:    validator,
		Auth:         auth,
	}
}

// Register creates a customer account and its profile row, then returns a
// fresh token so the storefront can log the user straight in.
func (s *AuthService) Register(
	ctx context.Context,
	email, password string,
	fullName, phone *string,
) (string, error) {
	if len(password) < 8 {
		return "", errors.New("password must be at least 8 characters")
	}

	if err := s.Validator.Validate(ctx, email); err != nil {
		return "", err
	}

	existing, err := s.AuthRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	accountID, err := s.AuthRepo.CreateAccount(ctx, email, string(hash), model.RoleCustomer, fullName, phone)
	if err != nil {
		return "", err
	}

	if _, err := s.CustomerRepo.Create(ctx, accountID); err != nil {
		return "", err
	}

	return s.Auth.GenerateToken(accountID, email, model.RoleCustomer, 72)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	a, err := s.AuthRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if a == nil || a.DeletedAt != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return s.Auth.GenerateToken(a.AccountID, a.Email, a.Role, 72)
}

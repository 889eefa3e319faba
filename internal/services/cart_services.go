package services

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/jackc/pgx/v5"
)

// CartStore is the slice of the order store the cart flow needs.
// FindOpenOrder reports a missing cart as pgx.ErrNoRows.
type CartStore interface {
	FindOpenOrder(ctx context.Context, customerID int64) (int64, error)
	CreateOpenOrder(ctx context.Context, customerID int64) (int64, error)
	GetProductInfo(ctx context.Context, productID int64) (string, float64, error)
	AddOrIncrementItem(ctx context.Context, orderID, productID int64, qty int, priceAtPurchase float64) error
	SetItemQuantity(ctx context.Context, orderID, productID int64, qty int) error
	RemoveItem(ctx context.Context, orderID, productID int64) error
	ClearItems(ctx context.Context, orderID int64) error
	GetItems(ctx context.Context, orderID int64) ([]model.CartItem, float64, error)
}

// CustomerResolver maps an authenticated account to its customer row.
type CustomerResolver interface {
	GetCustomerID(ctx context.Context, accountID int64) (int64, error)
}

type CartService struct {
	Repo         CartStore
	CustomerRepo CustomerResolver
}

func NewCartService(r CartStore, cr CustomerResolver) *CartService {
	return &CartService{
		Repo:         r,
		CustomerRepo: cr,
	}
}

// Add puts qty of a product in the customer's cart, creating the cart if
// needed.
func (s *CartService) Add(ctx context.Context, accountID, productID int64, qty int) error {
	if qty <= 0 {
		qty = 1
	}

	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return err
	}

	// only a missing cart means "create one"; a lookup fault must not
	// spawn a duplicate open order
	orderID, err := s.Repo.FindOpenOrder(ctx, cid)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		orderID, err = s.Repo.CreateOpenOrder(ctx, cid)
		if err != nil {
			return err
		}
	}

	// price is locked at the moment the item enters the cart
	_, price, err := s.Repo.GetProductInfo(ctx, productID)
	if err != nil {
		return err
	}

	return s.Repo.AddOrIncrementItem(ctx, orderID, productID, qty, price)
}

// Update sets the exact quantity for a cart item.
func (s *CartService) Update(ctx context.Context, accountID, productID int64, qty int) error {
	if qty <= 0 {
		return errors.New("quantity must be > 0")
	}
	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return err
	}
	orderID, err := s.Repo.FindOpenOrder(ctx, cid)
	if err != nil {
		return errors.New("no open cart")
	}
	return s.Repo.SetItemQuantity(ctx, orderID, productID, qty)
}

// Remove removes an item from the cart.
func (s *CartService) Remove(ctx context.Context, accountID, productID int64) error {
	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return err
	}
	orderID, err := s.Repo.FindOpenOrder(ctx, cid)
	if err != nil {
		return errors.New("no open cart")
	}
	return s.Repo.RemoveItem(ctx, orderID, productID)
}

// Clear clears the cart (removes items).
func (s *CartService) Clear(ctx context.Context, accountID int64) error {
	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return err
	}
	orderID, err := s.Repo.FindOpenOrder(ctx, cid)
	if err != nil {
		return errors.New("no open cart")
	}
	return s.Repo.ClearItems(ctx, orderID)
}

// Get returns the cart (items + total).
func (s *CartService) Get(ctx context.Context, accountID int64) (*model.CartResponse, error) {
	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	orderID, err := s.Repo.FindOpenOrder(ctx, cid)
	if err != nil {
		// empty cart
		return &model.CartResponse{Items: []model.CartItem{}, Total: 0}, nil
	}
	items, total, err := s.Repo.GetItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return &model.CartResponse{
		Items: items,
		Total: total,
	}, nil
}

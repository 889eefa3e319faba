package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/csestrada2005/puebla-barf-connect-sub001/external/gateway"
	"github.com/csestrada2005/puebla-barf-connect-sub001/external/resend"
	"github.com/csestrada2005/puebla-barf-connect-sub001/external/sheets"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService struct {
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	CustomerRepo *repository.CustomerRepository
	ZoneRepo     *repository.ZoneRepository
	Gateway      *gateway.Client
	Sheets       *sheets.Forwarder    // nil when order sync is not configured
	Mailer       *resend.ResendMailer // nil when resend is not configured
	Log          *zap.Logger
}

func NewOrderService(
	or *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	cr *repository.CustomerRepository,
	zr *repository.ZoneRepository,
	gw *gateway.Client,
	fw *sheets.Forwarder,
	mailer *resend.ResendMailer,
	log *zap.Logger,
) *OrderService {
	return &OrderService{
		Repo:         or,
		CartRepo:     cartRepo,
		CustomerRepo: cr,
		ZoneRepo:     zr,
		Gateway:      gw,
		Sheets:       fw,
		Mailer:       mailer,
		Log:          log,
	}
}

// CheckoutResult is what the storefront needs after placing an order.
type CheckoutResult struct {
	OrderNumber string  `json:"order_number"`
	Total       float64 `json:"total"`
	DeliveryFee float64 `json:"delivery_fee"`
	DeliveryDay string  `json:"delivery_day"`
	PaymentURL  string  `json:"payment_url,omitempty"` // card orders only
}

// Checkout converts the customer's open cart into a pending order. Card
// orders also get a hosted checkout URL from the gateway; the order stays
// payment_status pending until the gateway webhook settles it.
func (s *OrderService) Checkout(
	ctx context.Context,
	accountID int64,
	paymentMethod string,
	address, postalCode string,
) (*CheckoutResult, error) {
	if paymentMethod != model.PaymentMethodCash && paymentMethod != model.PaymentMethodCard {
		return nil, errors.New("payment method must be cash or card")
	}
	if address == "" {
		return nil, errors.New("delivery address is required")
	}

	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	orderID, err := s.CartRepo.FindOpenOrder(ctx, cid)
	if err != nil {
		return nil, errors.New("no open cart")
	}

	items, total, err := s.CartRepo.GetItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("cart is empty")
	}

	// the order must land inside a delivery zone
	zone, err := s.ZoneRepo.FindByPostalCode(ctx, postalCode)
	if err != nil {
		return nil, err
	}
	if zone == nil {
		return nil, errors.New("no delivery coverage for postal code " + postalCode)
	}
	total += zone.Fee

	orderNumber := "BARF-" + uuid.NewString()

	tx, err := s.Repo.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.Repo.PlaceOrderTx(ctx, tx, orderID, orderNumber, paymentMethod, total, address, postalCode); err != nil {
		return nil, fmt.Errorf("finalize order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	result := &CheckoutResult{
		OrderNumber: orderNumber,
		Total:       total,
		DeliveryFee: zone.Fee,
		DeliveryDay: zone.DeliveryDay,
	}

	if paymentMethod == model.PaymentMethodCard {
		url, err := s.Gateway.CreateCheckout(ctx, orderNumber, total, "MXN")
		if err != nil {
			// order is placed; the customer can retry payment from their
			// order list
			s.Log.Error("gateway checkout failed", zap.String("order_number", orderNumber), zap.Error(err))
			return nil, errors.New("could not start card payment, try again")
		}
		result.PaymentURL = url
	}

	s.notifyPlaced(ctx, accountID, orderNumber, paymentMethod, total)

	return result, nil
}

// orderSyncPayload is what the operations spreadsheet receives per order.
type orderSyncPayload struct {
	OrderNumber   string    `json:"order_number"`
	Email         string    `json:"email"`
	PaymentMethod string    `json:"payment_method"`
	Total         float64   `json:"total"`
	PlacedAt      time.Time `json:"placed_at"`
}

// notifyPlaced forwards the order to the spreadsheet and mails the
// confirmation. Both are best-effort; failures are logged only.
func (s *OrderService) notifyPlaced(
	ctx context.Context,
	accountID int64,
	orderNumber, paymentMethod string,
	total float64,
) {
	customer, err := s.CustomerRepo.GetByAccountID(ctx, accountID)
	if err != nil {
		s.Log.Warn("order notify skipped", zap.String("order_number", orderNumber), zap.Error(err))
		return
	}

	if s.Sheets != nil {
		payload := orderSyncPayload{
			OrderNumber:   orderNumber,
			Email:         customer.Email,
			PaymentMethod: paymentMethod,
			Total:         total,
			PlacedAt:      time.Now(),
		}
		if err := s.Sheets.Forward(ctx, payload); err != nil {
			s.Log.Warn("order sync failed", zap.String("order_number", orderNumber), zap.Error(err))
		}
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendOrderConfirmation(ctx, customer.Email, orderNumber, total); err != nil {
			s.Log.Warn("confirmation email failed", zap.String("order_number", orderNumber), zap.Error(err))
		}
	}
}

// ListMine returns the customer's placed orders, newest first.
func (s *OrderService) ListMine(ctx context.Context, accountID int64) ([]model.Order, error) {
	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	orders, err := s.Repo.ListByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// GetMine returns one of the customer's orders by business order number.
func (s *OrderService) GetMine(ctx context.Context, accountID int64, orderNumber string) (*model.Order, error) {
	cid, err := s.CustomerRepo.GetCustomerID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if o == nil || o.CustomerID != cid {
		return nil, errors.New("order not found")
	}
	return o, nil
}

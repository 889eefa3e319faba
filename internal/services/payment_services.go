package services

import (
	"context"
	"errors"

	"github.com/csestrada2005/puebla-barf-connect-sub001/external/gateway"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"go.uber.org/zap"
)

// ErrInvalidSignature is returned when a webhook's auth field does not match
// the computed HMAC. The endpoint maps it to a 401.
var ErrInvalidSignature = errors.New("invalid signature")

// PaymentOrderStore is the slice of the order store the webhook touches.
// Both methods target one pending card order (by order number, or the newest
// one when the number is empty) and report how many rows changed.
type PaymentOrderStore interface {
	MarkCardOrderPaid(ctx context.Context, orderNumber string) (int64, error)
	MarkCardOrderFailed(ctx context.Context, orderNumber string) (int64, error)
}

type PaymentService struct {
	Orders PaymentOrderStore
	APIKey string
	Secret string
	Log    *zap.Logger
}

func NewPaymentService(orders PaymentOrderStore, apiKey, secret string, log *zap.Logger) *PaymentService {
	return &PaymentService{
		Orders: orders,
		APIKey: apiKey,
		Secret: secret,
		Log:    log,
	}
}

// HandleGatewayEvent authenticates one webhook delivery and reconciles it
// against the order store. An unverifiable event returns
// ErrInvalidSignature before any store access; any other error is a store
// fault, and the caller decides whether to mask it. Repeated deliveries of
// a settled event simply match zero rows.
func (s *PaymentService) HandleGatewayEvent(
	ctx context.Context,
	ev model.PaymentEvent,
) (model.ReconcileResult, error) {
	if !gateway.VerifySignature(
		s.APIKey,
		ev.Event, ev.Amount.String(), ev.Currency, ev.Status, ev.Token,
		ev.Auth,
		s.Secret,
	) {
		s.Log.Warn("gateway webhook rejected",
			zap.String("event", ev.Event),
			zap.String("status", ev.Status),
		)
		return model.ReconcileResult{}, ErrInvalidSignature
	}

	switch ev.Status {

	case model.GatewayStatusApproved:
		rows, err := s.Orders.MarkCardOrderPaid(ctx, ev.OrderID)
		if err != nil {
			return model.ReconcileResult{}, err
		}
		s.Log.Info("payment approved",
			zap.String("event", ev.Event),
			zap.String("order_id", ev.OrderID),
			zap.Bool("matched", rows > 0),
		)
		return model.ReconcileResult{
			Outcome: model.ReconcileMarkedPaid,
			Matched: rows > 0,
		}, nil

	case model.GatewayStatusDeclined, model.GatewayStatusRejected, model.GatewayStatusFailed:
		rows, err := s.Orders.MarkCardOrderFailed(ctx, ev.OrderID)
		if err != nil {
			return model.ReconcileResult{}, err
		}
		s.Log.Info("payment failed",
			zap.String("event", ev.Event),
			zap.String("status", ev.Status),
			zap.String("order_id", ev.OrderID),
			zap.Bool("matched", rows > 0),
		)
		return model.ReconcileResult{
			Outcome: model.ReconcileMarkedFailed,
			Matched: rows > 0,
		}, nil
	}

	// anything else is acknowledged but ignored
	s.Log.Info("gateway event ignored",
		zap.String("event", ev.Event),
		zap.String("status", ev.Status),
	)
	return model.ReconcileResult{Outcome: model.ReconcileIgnored}, nil
}

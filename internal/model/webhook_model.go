package model

import (
	"encoding/json"
	"errors"
)

// PaymentEvent is the gateway's callback payload. Amount stays a json.Number
// so the signed message uses exactly the textual form the gateway sent.
type PaymentEvent struct {
	Event    string      `json:"event"`
	Amount   json.Number `json:"amount"`
	Currency string      `json:"currency"`
	Status   string      `json:"status"`
	Token    string      `json:"token"`
	Auth     string      `json:"auth"`
	OrderID  string      `json:"order_id,omitempty"`
}

// Validate rejects payloads missing any field the signature covers.
func (e PaymentEvent) Validate() error {
	if e.Event == "" || e.Amount.String() == "" || e.Currency == "" ||
		e.Status == "" || e.Token == "" || e.Auth == "" {
		return errors.New("missing required webhook field")
	}
	return nil
}

// Gateway transaction statuses that trigger a reconciliation write.
const (
	GatewayStatusApproved = "approved"
	GatewayStatusDeclined = "declined"
	GatewayStatusRejected = "rejected"
	GatewayStatusFailed   = "failed"
)

// ReconcileOutcome says what the webhook did to the order store.
type ReconcileOutcome string

const (
	ReconcileMarkedPaid   ReconcileOutcome = "marked_paid"
	ReconcileMarkedFailed ReconcileOutcome = "marked_failed"
	ReconcileIgnored      ReconcileOutcome = "ignored"
)

// ReconcileResult is the explicit result of one webhook reconciliation.
// Matched is false when no pending card order fit the filter, which is the
// expected shape of a replayed event for an already-settled order.
type ReconcileResult struct {
	Outcome ReconcileOutcome `json:"outcome"`
	Matched bool             `json:"matched"`
}

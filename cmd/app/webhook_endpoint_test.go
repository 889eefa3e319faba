package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/csestrada2005/puebla-barf-connect-sub001/external/gateway"
	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAPIKey = "pk_test_123"
	testSecret = "whsec_test_456"
)

// fakeOrderStore records reconciliation calls and lets tests script the
// number of matched rows or a store fault.
type fakeOrderStore struct {
	paidCalls   []string
	failedCalls []string
	rows        int64
	err         error
}

func (f *fakeOrderStore) MarkCardOrderPaid(_ context.Context, orderNumber string) (int64, error) {
	f.paidCalls = append(f.paidCalls, orderNumber)
	return f.rows, f.err
}

func (f *fakeOrderStore) MarkCardOrderFailed(_ context.Context, orderNumber string) (int64, error) {
	f.failedCalls = append(f.failedCalls, orderNumber)
	return f.rows, f.err
}

func newWebhookServer(store *fakeOrderStore, mask bool) *echo.Echo {
	e := echo.New()
	ps := services.NewPaymentService(store, testAPIKey, testSecret, zap.NewNop())
	registerWebhookRoutes(e.Group(""), ps, nil, mask, zap.NewNop())
	return e
}

// signedBody builds a payload whose auth field verifies.
func signedBody(event, amount, currency, status, token, orderID string) string {
	auth := gateway.Signature(testAPIKey, event, amount, currency, status, token, testSecret)
	body := fmt.Sprintf(
		`{"event":%q,"amount":%s,"currency":%q,"status":%q,"token":%q,"auth":%q`,
		event, amount, currency, status, token, auth,
	)
	if orderID != "" {
		body += fmt.Sprintf(`,"order_id":%q`, orderID)
	}
	return body + "}"
}

func postWebhook(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestWebhookOptionsPreflight(t *testing.T) {
	store := &fakeOrderStore{}
	e := newWebhookServer(store, true)

	req := httptest.NewRequest(http.MethodOptions, "/webhooks/payment", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t,
		"authorization, x-client-info, apikey, content-type",
		rec.Header().Get("Access-Control-Allow-Headers"),
	)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, store.paidCalls)
	assert.Empty(t, store.failedCalls)
}

func TestWebhookApprovedWithOrderID(t *testing.T) {
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, signedBody("charge.updated", "1250", "MXN", "approved", "tok_abc", "BARF-001"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	require.Len(t, store.paidCalls, 1)
	assert.Equal(t, "BARF-001", store.paidCalls[0])
	assert.Empty(t, store.failedCalls)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWebhookDeclinedWithoutOrderID(t *testing.T) {
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, signedBody("charge.updated", "1250", "MXN", "declined", "tok_abc", ""))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.failedCalls, 1)
	// empty order number = newest-pending fallback targeting
	assert.Equal(t, "", store.failedCalls[0])
	assert.Empty(t, store.paidCalls)
}

func TestWebhookNonSettlingStatusIsIgnored(t *testing.T) {
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, signedBody("charge.updated", "1250", "MXN", "pending", "tok_abc", "BARF-001"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	assert.Empty(t, store.paidCalls)
	assert.Empty(t, store.failedCalls)
}

func TestWebhookInvalidSignature(t *testing.T) {
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	body := `{"event":"charge.updated","amount":1250,"currency":"MXN","status":"approved","token":"tok_abc","auth":"deadbeef","order_id":"BARF-001"}`
	rec := postWebhook(e, body)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error": "Invalid signature"}`, rec.Body.String())
	assert.Empty(t, store.paidCalls)
	assert.Empty(t, store.failedCalls)
}

func TestWebhookTamperedFieldRejected(t *testing.T) {
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	// sign with one amount, send another
	auth := gateway.Signature(testAPIKey, "charge.updated", "1250", "MXN", "approved", "tok_abc", testSecret)
	body := fmt.Sprintf(
		`{"event":"charge.updated","amount":9999,"currency":"MXN","status":"approved","token":"tok_abc","auth":%q}`,
		auth,
	)
	rec := postWebhook(e, body)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, store.paidCalls)
}

func TestWebhookReplayOfSettledOrder(t *testing.T) {
	// zero matched rows is the idempotence fallback: still a 200
	store := &fakeOrderStore{rows: 0}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, signedBody("charge.updated", "1250", "MXN", "approved", "tok_abc", "BARF-001"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
	require.Len(t, store.paidCalls, 1)
}

func TestWebhookMalformedBody(t *testing.T) {
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, `{not-json`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Webhook processing error"}`, rec.Body.String())
	assert.Empty(t, store.paidCalls)
}

func TestWebhookMissingFieldRejected(t *testing.T) {
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, `{"event":"charge.updated","amount":1250,"status":"approved"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, store.paidCalls)
}

func TestWebhookStoreFailureMasked(t *testing.T) {
	store := &fakeOrderStore{err: errors.New("connection refused")}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, signedBody("charge.updated", "1250", "MXN", "approved", "tok_abc", "BARF-001"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received": true}`, rec.Body.String())
}

func TestWebhookStoreFailureSurfaced(t *testing.T) {
	store := &fakeOrderStore{err: errors.New("connection refused")}
	e := newWebhookServer(store, false)

	rec := postWebhook(e, signedBody("charge.updated", "1250", "MXN", "approved", "tok_abc", "BARF-001"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Webhook processing error"}`, rec.Body.String())
}

func TestWebhookFractionalAmountSignsExactly(t *testing.T) {
	// 1250.5 must be signed with the exact textual form the gateway sent
	store := &fakeOrderStore{rows: 1}
	e := newWebhookServer(store, true)

	rec := postWebhook(e, signedBody("charge.updated", "1250.5", "MXN", "approved", "tok_abc", "BARF-002"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.paidCalls, 1)
}

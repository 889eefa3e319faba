package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureIsDeterministic(t *testing.T) {
	a := Signature("key", "charge.updated", "1250", "MXN", "approved", "tok", "secret")
	b := Signature("key", "charge.updated", "1250", "MXN", "approved", "tok", "secret")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex
	assert.Regexp(t, "^[0-9a-f]{64}$", a)
}

func TestSignatureChangesWithAnyField(t *testing.T) {
	base := Signature("key", "ev", "100", "MXN", "approved", "tok", "secret")

	variants := []string{
		Signature("key2", "ev", "100", "MXN", "approved", "tok", "secret"),
		Signature("key", "ev2", "100", "MXN", "approved", "tok", "secret"),
		Signature("key", "ev", "101", "MXN", "approved", "tok", "secret"),
		Signature("key", "ev", "100", "USD", "approved", "tok", "secret"),
		Signature("key", "ev", "100", "MXN", "declined", "tok", "secret"),
		Signature("key", "ev", "100", "MXN", "approved", "tok2", "secret"),
		Signature("key", "ev", "100", "MXN", "approved", "tok", "secret2"),
	}
	for i, v := range variants {
		assert.NotEqual(t, base, v, "variant %d should differ", i)
	}
}

func TestVerifySignature(t *testing.T) {
	auth := Signature("key", "ev", "100", "MXN", "approved", "tok", "secret")

	assert.True(t, VerifySignature("key", "ev", "100", "MXN", "approved", "tok", auth, "secret"))
	assert.False(t, VerifySignature("key", "ev", "100", "MXN", "approved", "tok", "bad", "secret"))
	assert.False(t, VerifySignature("key", "ev", "100", "MXN", "declined", "tok", auth, "secret"))
}

func TestCreateCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer pk_test", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "BARF-001", req["reference"])

		json.NewEncoder(w).Encode(map[string]string{
			"token":        "tok_1",
			"redirect_url": "https://pay.example.com/tok_1",
		})
	}))
	defer srv.Close()

	c, err := NewClient("pk_test", srv.URL)
	require.NoError(t, err)

	url, err := c.CreateCheckout(context.Background(), "BARF-001", 1250.50, "MXN")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/tok_1", url)
}

func TestCreateCheckoutGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c, err := NewClient("pk_test", srv.URL)
	require.NoError(t, err)

	_, err = c.CreateCheckout(context.Background(), "BARF-001", 100, "MXN")
	assert.Error(t, err)
}

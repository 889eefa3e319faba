package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	f, err := NewForwarder(srv.URL)
	require.NoError(t, err)

	err = f.Forward(context.Background(), map[string]any{"order_number": "BARF-001"})
	require.NoError(t, err)
	assert.Equal(t, "BARF-001", got["order_number"])
}

func TestForwardRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad row", http.StatusBadRequest)
	}))
	defer srv.Close()

	f, err := NewForwarder(srv.URL)
	require.NoError(t, err)

	assert.Error(t, f.Forward(context.Background(), map[string]any{}))
}

func TestNewForwarderRequiresURL(t *testing.T) {
	_, err := NewForwarder("")
	assert.Error(t, err)
}

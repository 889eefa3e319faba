package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/object/delivery-photos/BARF-001/photo.jpg", r.URL.Path)
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "fake-jpeg-bytes", string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "service-key", "delivery-photos")
	require.NoError(t, err)

	url, err := c.Upload(context.Background(), "BARF-001/photo.jpg", "image/jpeg", strings.NewReader("fake-jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/object/public/delivery-photos/BARF-001/photo.jpg", url)
}

func TestUploadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket missing", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, "service-key", "delivery-photos")
	require.NoError(t, err)

	_, err = c.Upload(context.Background(), "k", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
}

package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

// Client uploads objects to the storage service's bucket API using the
// privileged service key. Uploaded delivery photos are publicly readable.
type Client struct {
	baseURL    string
	serviceKey string
	bucket     string
	client     *http.Client
}

func NewClient(baseURL, serviceKey, bucket string) (*Client, error) {
	if baseURL == "" || serviceKey == "" {
		return nil, errors.New("storage url or service key not set")
	}
	return &Client{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		bucket:     bucket,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// Upload stores the object and returns its public URL.
func (c *Client) Upload(
	ctx context.Context,
	key string,
	contentType string,
	body io.Reader,
) (string, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/object/"+c.bucket+"/"+key,
		body,
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return "", errors.New("photo upload failed: " + buf.String())
	}

	return c.PublicURL(key), nil
}

func (c *Client) PublicURL(key string) string {
	return c.baseURL + "/object/public/" + c.bucket + "/" + key
}

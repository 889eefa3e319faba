package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Signature computes the gateway's webhook signature: HMAC-SHA256 over the
// API key followed by event, amount, currency, status and token (no
// separators), keyed with the HMAC secret, hex-encoded lowercase.
func Signature(apiKey, event, amount, currency, status, token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(apiKey + event + amount + currency + status + token))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the auth field of a webhook payload. The compare is
// constant-time.
func VerifySignature(apiKey, event, amount, currency, status, token, auth, secret string) bool {
	expected := Signature(apiKey, event, amount, currency, status, token, secret)
	return hmac.Equal([]byte(expected), []byte(auth))
}

// Client talks to the gateway's checkout API to start a card payment.
type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gateway api key not set")
	}
	if baseURL == "" {
		baseURL = "https://api.pagos.example.com"
	}
	return &Client{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
	}, nil
}

type checkoutRequest struct {
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

type checkoutResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// CreateCheckout registers the order with the gateway and returns the hosted
// payment page URL the storefront redirects to.
func (c *Client) CreateCheckout(
	ctx context.Context,
	orderNumber string,
	amount float64,
	currency string,
) (string, error) {
	body := checkoutRequest{
		Reference: orderNumber,
		Amount:    amount,
		Currency:  currency,
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/v1/checkouts",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return "", errors.New("gateway checkout failed: " + buf.String())
	}

	var out checkoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.RedirectURL == "" {
		return "", errors.New("gateway checkout returned no redirect url")
	}

	return out.RedirectURL, nil
}

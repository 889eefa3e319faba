package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Forwarder pushes order payloads to the operations spreadsheet's webhook.
// It sends whatever JSON it is given; the sheet side owns column mapping.
type Forwarder struct {
	webhookURL string
	client     *http.Client
}

func NewForwarder(webhookURL string) (*Forwarder, error) {
	if webhookURL == "" {
		return nil, errors.New("sheets webhook url not set")
	}
	return &Forwarder{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (f *Forwarder) Forward(ctx context.Context, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		f.webhookURL,
		bytes.NewBuffer(b),
	)
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("order sync rejected: " + buf.String())
	}

	return nil
}

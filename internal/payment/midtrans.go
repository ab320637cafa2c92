// Package payment talks to the Midtrans Snap transaction API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrPaymentFailed is matched by every error CreateLink returns for a
// request the gateway did not accept.
var ErrPaymentFailed = errors.New("payment failed")

// TransactionDetails identifies the order being paid.
type TransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

// Request is the body of a Snap transaction request.
type Request struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
}

// Link is the Snap answer: a token and the hosted payment page.
type Link struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// GatewayError is returned when the gateway answers with anything but 201.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment failed: gateway status %d", e.StatusCode)
}

// ErrorCode exposes the gateway status so the error renders with its code.
func (e *GatewayError) ErrorCode() int { return e.StatusCode }

// Is makes GatewayError match ErrPaymentFailed.
func (e *GatewayError) Is(target error) bool { return target == ErrPaymentFailed }

// Client creates payment links.
type Client struct {
	url       string
	serverKey string
	http      *http.Client
}

// NewClient returns a Client posting to transactionURL and authenticating
// with serverKey.
func NewClient(transactionURL, serverKey string, timeout time.Duration) *Client {
	return &Client{
		url:       transactionURL,
		serverKey: serverKey,
		http:      &http.Client{Timeout: timeout},
	}
}

// CreateLink registers a transaction and returns its payment link.  The
// gateway must answer 201 Created.
func (c *Client) CreateLink(ctx context.Context, req Request) (Link, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Link{}, fmt.Errorf("marshal payment request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Link{}, fmt.Errorf("build payment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.serverKey, "")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return Link{}, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Link{}, fmt.Errorf("%w: read body: %v", ErrPaymentFailed, err)
	}
	if resp.StatusCode != http.StatusCreated {
		return Link{}, &GatewayError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var link Link
	if err := json.Unmarshal(raw, &link); err != nil {
		return Link{}, fmt.Errorf("%w: decode body: %v", ErrPaymentFailed, err)
	}
	return link, nil
}

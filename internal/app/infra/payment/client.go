package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/app/pkg/errorx"
)

const serviceName = "payment"

// IntentStatus lifecycle of a payment intent
type IntentStatus string

const (
	StatusRequiresPaymentMethod IntentStatus = "requires_payment_method"
	StatusRequiresConfirmation  IntentStatus = "requires_confirmation"
	StatusRequiresAction        IntentStatus = "requires_action"
	StatusProcessing            IntentStatus = "processing"
	StatusSucceeded             IntentStatus = "succeeded"
	StatusCanceled              IntentStatus = "canceled"
)

// Final reports whether the intent will not change status anymore
func (s IntentStatus) Final() bool {
	return s == StatusSucceeded || s == StatusCanceled
}

// Intent payment intent as returned by the provider
type Intent struct {
	ID           string            `json:"id"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       IntentStatus      `json:"status"`
	ClientSecret string            `json:"client_secret"`
	Metadata     map[string]string `json:"metadata"`
}

// CreateIntentRequest amount is in the smallest currency unit (cents)
type CreateIntentRequest struct {
	AmountCents    int64
	Currency       string
	OrderID        string
	ReceiptEmail   string
	IdempotencyKey string
}

// Client payment provider operations
type Client interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (Intent, error)
	GetIntent(ctx context.Context, id string) (Intent, error)
}

type client struct {
	baseURL   string
	secretKey string
	http      *http.Client
}

// New creates a client authenticated with secretKey. Every failure is an *errorx.UpstreamError.
func New(baseURL, secretKey string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		secretKey: secretKey,
		http:      httpClient,
	}
}

func (c *client) CreateIntent(ctx context.Context, in CreateIntentRequest) (Intent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(in.AmountCents, 10))
	form.Set("currency", strings.ToLower(in.Currency))
	form.Set("automatic_payment_methods[enabled]", "true")
	if in.OrderID != "" {
		form.Set("metadata[order_id]", in.OrderID)
	}
	if in.ReceiptEmail != "" {
		form.Set("receipt_email", in.ReceiptEmail)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return Intent{}, errorx.NewUpstreamError(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if in.IdempotencyKey != "" {
		req.Header.Set("Idempotency-Key", in.IdempotencyKey)
	}
	return c.do(req)
}

func (c *client) GetIntent(ctx context.Context, id string) (Intent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/payment_intents/"+url.PathEscape(id), nil)
	if err != nil {
		return Intent{}, errorx.NewUpstreamError(serviceName, err)
	}
	return c.do(req)
}

func (c *client) do(req *http.Request) (Intent, error) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return Intent{}, errorx.NewUpstreamError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Intent{}, errorx.NewUpstreamError(serviceName, decodeError(resp))
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return Intent{}, errorx.NewUpstreamError(serviceName, fmt.Errorf("decode payment intent failed: %w", err))
	}
	return intent, nil
}

// decodeError extracts {"error":{"message"}} from a failed response
func decodeError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(b, &body) == nil && body.Error.Message != "" {
		return fmt.Errorf("payment_intents %d: %s: %s", resp.StatusCode, body.Error.Type, body.Error.Message)
	}
	return fmt.Errorf("payment_intents %d: %s", resp.StatusCode, string(b))
}

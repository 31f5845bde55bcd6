package carrier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"storefront/internal/app/pkg/errorx"
)

const serviceName = "carrier"

// RateRequest parcel to price
type RateRequest struct {
	OriginZip      string  `json:"origin_zip"`
	DestinationZip string  `json:"destination_zip"`
	WeightLbs      float64 `json:"weight_lbs"`
}

// Rate carrier base price for a parcel
type Rate struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Client carrier rate lookups
type Client interface {
	Rate(ctx context.Context, req RateRequest) (Rate, error)
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client against baseURL. Every failure is an *errorx.UpstreamError.
func New(baseURL, apiKey string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
	}
}

func (c *client) Rate(ctx context.Context, rr RateRequest) (Rate, error) {
	body, err := json.Marshal(rr)
	if err != nil {
		return Rate{}, errorx.NewUpstreamError(serviceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/rates", bytes.NewReader(body))
	if err != nil {
		return Rate{}, errorx.NewUpstreamError(serviceName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Rate{}, errorx.NewUpstreamError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return Rate{}, errorx.NewUpstreamError(serviceName, fmt.Errorf("rates endpoint %d: %s", resp.StatusCode, string(b)))
	}

	var rate Rate
	if err := json.NewDecoder(resp.Body).Decode(&rate); err != nil {
		return Rate{}, errorx.NewUpstreamError(serviceName, fmt.Errorf("decode rate failed: %w", err))
	}
	if rate.Amount <= 0 {
		return Rate{}, errorx.NewUpstreamError(serviceName, fmt.Errorf("non-positive rate %.2f", rate.Amount))
	}
	if rate.Currency != "" && !strings.EqualFold(rate.Currency, "USD") {
		return Rate{}, errorx.NewUpstreamError(serviceName, fmt.Errorf("unsupported rate currency %s", rate.Currency))
	}
	return rate, nil
}

// Package attestation wraps the multi-signature attestation service that
// gates execution for swarms requiring member sign-off. It sits entirely
// upstream of the batch executor.
package attestation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// ApprovalStatus reports whether a message has collected enough member
// signatures to proceed.
type ApprovalStatus struct {
	Approved      bool `json:"approved"`
	Confirmations int  `json:"confirmations"`
	Threshold     int  `json:"threshold"`
}

// Checker is the consumer-side view of the attestation service.
type Checker interface {
	IsApproved(ctx context.Context, message string) (*ApprovalStatus, error)
}

// Client calls the attestation service HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Checker = (*Client)(nil)

// NewClient creates an attestation client for the given base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// IsApproved checks whether the given message has reached its signature
// threshold.
func (c *Client) IsApproved(ctx context.Context, message string) (*ApprovalStatus, error) {
	params := url.Values{}
	params.Add("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/approvals", nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "attestation request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("attestation service returned status %d", resp.StatusCode)
	}

	var status ApprovalStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, errors.Wrap(err, "failed to decode approval status")
	}
	return &status, nil
}

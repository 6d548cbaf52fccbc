// Package signer wraps the decentralized key-management network that holds
// the shared signing key. The rest of the system treats the signer as an
// opaque credential and never inspects it.
package signer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
)

// Signer is an opaque signing credential usable wherever the submission
// client expects one.
type Signer interface {
	// Address is the session key's EOA address as registered on the wallets.
	Address() string
	// SignHash co-signs a 32-byte digest through the key network.
	SignHash(ctx context.Context, hash []byte) ([]byte, error)
}

// Client talks to the key-management network's HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the key network at the given base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type sessionResponse struct {
	SessionID string `json:"sessionId"`
	Address   string `json:"address"`
}

type signRequest struct {
	SessionID string `json:"sessionId"`
	Hash      string `json:"hash"`
}

type signResponse struct {
	Signature string `json:"signature"`
}

// SessionSigner opens a signing session with the network and returns the
// session-bound signer. Each execution reconstructs its own session; the
// network handles key shares and thresholds internally.
func (c *Client) SessionSigner(ctx context.Context) (Signer, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/v1/sessions", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open signing session")
	}

	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode signing session")
	}
	if session.SessionID == "" || session.Address == "" {
		return nil, errors.New("key network returned an incomplete session")
	}

	return &sessionSigner{client: c, sessionID: session.SessionID, address: session.Address}, nil
}

type sessionSigner struct {
	client    *Client
	sessionID string
	address   string
}

func (s *sessionSigner) Address() string {
	return s.address
}

func (s *sessionSigner) SignHash(ctx context.Context, hash []byte) ([]byte, error) {
	payload, err := json.Marshal(signRequest{SessionID: s.sessionID, Hash: hexutil.Encode(hash)})
	if err != nil {
		return nil, err
	}

	body, err := s.client.doRequest(ctx, http.MethodPost, "/v1/sign", payload)
	if err != nil {
		return nil, errors.Wrap(err, "signing request failed")
	}

	var signed signResponse
	if err := json.Unmarshal(body, &signed); err != nil {
		return nil, errors.Wrap(err, "failed to decode signature")
	}

	signature, err := hexutil.Decode(signed.Signature)
	if err != nil {
		return nil, errors.Wrap(err, "key network returned invalid signature hex")
	}
	return signature, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-api-key", c.apiKey)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("key network returned status %d", resp.StatusCode)
	}

	return respBody, nil
}

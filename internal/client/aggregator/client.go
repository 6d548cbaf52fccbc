// Package aggregator wraps the external swap aggregator API that prices and
// builds per-wallet swap transactions.
package aggregator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
)

// Client calls the swap aggregator HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an aggregator client for the given API base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// QuoteRequest asks for one wallet's swap leg.
type QuoteRequest struct {
	WalletAddress string
	SellToken     string
	BuyToken      string
	SellAmount    *big.Int
	SlippageBps   int64
}

// QuoteResult is one wallet's swap leg: either a ready-to-submit transaction
// payload plus the allowance target the wallet must approve, or an Error
// string for that wallet.
type QuoteResult struct {
	WalletAddress   string
	To              string
	Data            string
	Value           *big.Int
	BuyAmount       *big.Int
	AllowanceTarget string
	Error           string
}

// ErrorResponse is the aggregator's error body shape.
type ErrorResponse struct {
	Reason string `json:"reason"`
}

type quoteResponse struct {
	To              string `json:"to"`
	Data            string `json:"data"`
	Value           string `json:"value"`
	BuyAmount       string `json:"buyAmount"`
	AllowanceTarget string `json:"allowanceTarget"`
}

// GetSwapExecuteData fetches a quote and executable payload for every wallet.
// A failed quote is recorded on that wallet's result, never returned as an
// error for the whole batch.
func (c *Client) GetSwapExecuteData(ctx context.Context, requests []QuoteRequest) ([]QuoteResult, error) {
	results := make([]QuoteResult, 0, len(requests))

	for _, req := range requests {
		result := QuoteResult{WalletAddress: req.WalletAddress}

		quote, err := c.getQuote(ctx, req)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		value := big.NewInt(0)
		if quote.Value != "" {
			parsed, ok := new(big.Int).SetString(quote.Value, 10)
			if !ok {
				result.Error = fmt.Sprintf("aggregator returned invalid value: %q", quote.Value)
				results = append(results, result)
				continue
			}
			value = parsed
		}

		buyAmount := big.NewInt(0)
		if quote.BuyAmount != "" {
			parsed, ok := new(big.Int).SetString(quote.BuyAmount, 10)
			if !ok {
				result.Error = fmt.Sprintf("aggregator returned invalid buy amount: %q", quote.BuyAmount)
				results = append(results, result)
				continue
			}
			buyAmount = parsed
		}

		result.To = quote.To
		result.Data = quote.Data
		result.Value = value
		result.BuyAmount = buyAmount
		result.AllowanceTarget = quote.AllowanceTarget
		results = append(results, result)
	}

	return results, nil
}

func (c *Client) getQuote(ctx context.Context, req QuoteRequest) (*quoteResponse, error) {
	params := url.Values{}
	params.Add("sellToken", req.SellToken)
	params.Add("buyToken", req.BuyToken)
	params.Add("sellAmount", req.SellAmount.String())
	params.Add("takerAddress", req.WalletAddress)
	params.Add("slippageBps", fmt.Sprintf("%d", req.SlippageBps))

	body, _, err := c.doRequest(ctx, http.MethodGet, "/swap/v1/quote", params)
	if err != nil {
		return nil, err
	}

	var quote quoteResponse
	if err := json.Unmarshal(body, &quote); err != nil {
		return nil, errors.Wrap(err, "failed to decode aggregator quote")
	}
	return &quote, nil
}

// doRequest handles the common HTTP request/response logic used across all
// aggregator API calls. The aggregator surface is query-string only.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, queryParams url.Values) ([]byte, *int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, nil, err
	}

	if queryParams != nil {
		req.URL.RawQuery = queryParams.Encode()
	}

	req.Header.Set("0x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil {
			return nil, &resp.StatusCode, errors.New("unknown aggregator error")
		}
		return nil, &resp.StatusCode, errors.Wrap(errors.New(errResp.Reason), "aggregator api error")
	}

	return respBody, &resp.StatusCode, nil
}

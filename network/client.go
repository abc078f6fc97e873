// Package network holds the remote collaborators of the signing core: a
// Counterparty API v2 client for queries and transaction composition, and a
// Bitcoin node JSON-RPC client for broadcasting what the core signs.
// Nothing here is trusted for payload verification; tx.ExtractPayload
// checks the composer's output independently.
package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// APIConfig holds the connection parameters for a Counterparty API v2
// endpoint.
type APIConfig struct {
	BaseURL string `json:"base_url"`
	Timeout time.Duration
}

// Client is an HTTP client for the Counterparty API v2. All methods are
// context-aware and safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
}

// apiEnvelope is the response wrapper every v2 endpoint returns.
type apiEnvelope struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

// Balance is one asset balance row for an address.
type Balance struct {
	Address  string `json:"address"`
	Asset    string `json:"asset"`
	Quantity int64  `json:"quantity"`
}

// Asset describes a Counterparty asset.
type Asset struct {
	Asset         string `json:"asset"`
	AssetLongname string `json:"asset_longname"`
	Owner         string `json:"owner"`
	Divisible     bool   `json:"divisible"`
	Locked        bool   `json:"locked"`
	Supply        int64  `json:"supply"`
	Description   string `json:"description"`
}

// Order is one open or historical DEX order.
type Order struct {
	TxHash       string `json:"tx_hash"`
	Source       string `json:"source"`
	GiveAsset    string `json:"give_asset"`
	GiveQuantity int64  `json:"give_quantity"`
	GetAsset     string `json:"get_asset"`
	GetQuantity  int64  `json:"get_quantity"`
	Status       string `json:"status"`
}

// ComposeResult is the composer's answer: an unsigned raw transaction plus
// the embedded data it claims to carry. The caller verifies the claim
// locally before signing.
type ComposeResult struct {
	RawTransaction string          `json:"rawtransaction"`
	Data           string          `json:"data"`
	BTCFee         int64           `json:"btc_fee"`
	Params         json.RawMessage `json:"params"`
}

// NewClient creates a Counterparty API client. A zero Timeout defaults to
// 30 seconds.
func NewClient(cfg APIConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
	}
}

// GetBalances returns all asset balances held by address.
func (c *Client) GetBalances(ctx context.Context, address string) ([]Balance, error) {
	var balances []Balance
	path := fmt.Sprintf("/v2/addresses/%s/balances", url.PathEscape(address))
	if err := c.get(ctx, path, nil, &balances); err != nil {
		return nil, err
	}
	return balances, nil
}

// GetAsset returns the registry entry for an asset name.
func (c *Client) GetAsset(ctx context.Context, asset string) (*Asset, error) {
	var result Asset
	path := fmt.Sprintf("/v2/assets/%s", url.PathEscape(asset))
	if err := c.get(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrders returns the DEX orders placed by address.
func (c *Client) GetOrders(ctx context.Context, address string) ([]Order, error) {
	var orders []Order
	path := fmt.Sprintf("/v2/addresses/%s/orders", url.PathEscape(address))
	if err := c.get(ctx, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ComposeSend asks the node to compose an unsigned asset send.
func (c *Client) ComposeSend(ctx context.Context, source, destination, asset string, quantity int64) (*ComposeResult, error) {
	query := url.Values{
		"destination": {destination},
		"asset":       {asset},
		"quantity":    {strconv.FormatInt(quantity, 10)},
	}
	return c.compose(ctx, source, "send", query)
}

// ComposeOrder asks the node to compose an unsigned DEX order.
func (c *Client) ComposeOrder(ctx context.Context, source, giveAsset string, giveQuantity int64, getAsset string, getQuantity int64) (*ComposeResult, error) {
	query := url.Values{
		"give_asset":    {giveAsset},
		"give_quantity": {strconv.FormatInt(giveQuantity, 10)},
		"get_asset":     {getAsset},
		"get_quantity":  {strconv.FormatInt(getQuantity, 10)},
		"expiration":    {"8064"},
	}
	return c.compose(ctx, source, "order", query)
}

// ComposeIssuance asks the node to compose an unsigned asset issuance.
func (c *Client) ComposeIssuance(ctx context.Context, source, asset string, quantity int64, divisible bool, description string) (*ComposeResult, error) {
	query := url.Values{
		"asset":       {asset},
		"quantity":    {strconv.FormatInt(quantity, 10)},
		"divisible":   {strconv.FormatBool(divisible)},
		"description": {description},
	}
	return c.compose(ctx, source, "issuance", query)
}

// compose performs a compose call for the named message type.
func (c *Client) compose(ctx context.Context, source, kind string, query url.Values) (*ComposeResult, error) {
	var result ComposeResult
	path := fmt.Sprintf("/v2/addresses/%s/compose/%s", url.PathEscape(source), kind)
	if err := c.get(ctx, path, query, &result); err != nil {
		return nil, err
	}
	if result.RawTransaction == "" {
		return nil, fmt.Errorf("%w: compose returned no transaction", ErrInvalidResponse)
	}
	return &result, nil
}

// get performs a GET against the v2 API, unwraps the result envelope, and
// decodes it into result.
func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("network: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrInvalidResponse, err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: HTTP %d", ErrNodeRejected, resp.StatusCode)
		}
		return fmt.Errorf("%w: decode response: %w", ErrInvalidResponse, err)
	}
	if envelope.Error != "" {
		return fmt.Errorf("%w: %s", ErrNodeRejected, envelope.Error)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d", ErrNodeRejected, resp.StatusCode)
	}

	if result != nil && envelope.Result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("%w: unmarshal result: %w", ErrInvalidResponse, err)
		}
	}
	return nil
}

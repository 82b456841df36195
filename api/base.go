package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client handles calls to the Etherscan v2 API
type Client struct {
	httpClient *http.Client
	apiKey     string
	chainID    int64
	baseURL    string // defaults to BaseURL; overridable in tests
}

// NewClient creates a new API client bound to one chain. The chain ID is
// passed through opaquely; unknown IDs are the server's problem.
func NewClient(apiKey string, chainID int64) *Client {
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: RequestTimeout,
		},
		apiKey:  apiKey,
		chainID: chainID,
		baseURL: BaseURL,
	}
}

// ChainID returns the chain this client queries.
func (c *Client) ChainID() int64 {
	return c.chainID
}

// get issues one GET against the API. The module/action pair selects the
// remote operation, extra holds the operation-specific parameters. The
// apikey and chainid parameters are appended here so no call path can
// forget them.
func (c *Client) get(module, action string, extra map[string]string) (*Response, error) {
	params := url.Values{}
	params.Set("module", module)
	params.Set("action", action)
	for key, value := range extra {
		params.Set(key, value)
	}
	params.Set("apikey", c.apiKey)
	params.Set("chainid", strconv.FormatInt(c.chainID, 10))

	resp, err := c.httpClient.Get(c.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if envelope.Status != "1" {
		message := envelope.Message
		if message == "" {
			message = "Unknown error"
		}
		return nil, &APIError{Message: message}
	}

	return &envelope, nil
}

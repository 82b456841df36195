package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points a client at a fake Etherscan server.
func newTestClient(t *testing.T, apiKey string, chainID int64, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(apiKey, chainID)
	client.baseURL = server.URL
	return client
}

func TestEveryOperationSendsChainID(t *testing.T) {
	operations := map[string]func(c *Client) (*Response, error){
		"gasoracle": func(c *Client) (*Response, error) {
			return c.GetGasPrices()
		},
		"tokenbalance": func(c *Client) (*Response, error) {
			return c.GetTokenBalance("0xdac17f958d2ee523a2206206994597c13d831ec7", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
		},
		"balance": func(c *Client) (*Response, error) {
			return c.GetEthBalance("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
		},
	}

	for action, call := range operations {
		t.Run(action, func(t *testing.T) {
			var query url.Values
			client := newTestClient(t, "TESTKEY", ChainSepolia, func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Query()
				w.Write([]byte(`{"status":"1","message":"OK","result":"0"}`))
			})

			_, err := call(client)
			require.NoError(t, err)

			assert.Equal(t, "11155111", query.Get("chainid"))
			assert.Equal(t, "TESTKEY", query.Get("apikey"))
			assert.Equal(t, action, query.Get("action"))
		})
	}
}

func TestGetGasPrices(t *testing.T) {
	client := newTestClient(t, "TESTKEY", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gastracker", r.URL.Query().Get("module"))
		assert.Equal(t, "gasoracle", r.URL.Query().Get("action"))
		assert.Equal(t, "1", r.URL.Query().Get("chainid"))
		w.Write([]byte(`{"status":"1","result":{"SafeGasPrice":"20","ProposeGasPrice":"22","FastGasPrice":"24"}}`))
	})

	resp, err := client.GetGasPrices()
	require.NoError(t, err)
	require.NotNil(t, resp)

	var oracle GasOracleResult
	require.NoError(t, resp.DecodeResult(&oracle))
	assert.Equal(t, "20", oracle.SafeGasPrice)
	assert.Equal(t, "22", oracle.ProposeGasPrice)
	assert.Equal(t, "24", oracle.FastGasPrice)
}

func TestGetTokenBalanceParams(t *testing.T) {
	contract := "0xdac17f958d2ee523a2206206994597c13d831ec7"
	wallet := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

	client := newTestClient(t, "TESTKEY", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "account", query.Get("module"))
		assert.Equal(t, "tokenbalance", query.Get("action"))
		assert.Equal(t, contract, query.Get("contractaddress"))
		assert.Equal(t, wallet, query.Get("address"))
		assert.Equal(t, "latest", query.Get("tag"))
		w.Write([]byte(`{"status":"1","message":"OK","result":"123456789000000000000"}`))
	})

	resp, err := client.GetTokenBalance(contract, wallet)
	require.NoError(t, err)

	var balance string
	require.NoError(t, resp.DecodeResult(&balance))
	assert.Equal(t, "123456789000000000000", balance)
}

func TestGetEthBalanceParams(t *testing.T) {
	wallet := "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"

	client := newTestClient(t, "TESTKEY", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "account", query.Get("module"))
		assert.Equal(t, "balance", query.Get("action"))
		assert.Equal(t, wallet, query.Get("address"))
		assert.Equal(t, "latest", query.Get("tag"))
		w.Write([]byte(`{"status":"1","message":"OK","result":"42"}`))
	})

	_, err := client.GetEthBalance(wallet)
	require.NoError(t, err)
}

func TestAPIErrorCarriesMessage(t *testing.T) {
	client := newTestClient(t, "TESTKEY", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0","message":"Max rate limit reached","result":null}`))
	})

	resp, err := client.GetGasPrices()
	assert.Nil(t, resp)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Max rate limit reached", apiErr.Message)
}

func TestAPIErrorDefaultsToUnknown(t *testing.T) {
	client := newTestClient(t, "TESTKEY", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"0"}`))
	})

	resp, err := client.GetEthBalance("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	assert.Nil(t, resp)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Unknown error", apiErr.Message)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient("TESTKEY", ChainMainnet)
	client.baseURL = server.URL

	resp, err := client.GetGasPrices()
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestNonJSONResponse(t *testing.T) {
	client := newTestClient(t, "TESTKEY", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	})

	resp, err := client.GetTokenBalance("0xdac17f958d2ee523a2206206994597c13d831ec7", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	assert.Nil(t, resp)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "decode failures are not API errors")
}

func TestHTTPErrorStatus(t *testing.T) {
	client := newTestClient(t, "TESTKEY", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	})

	resp, err := client.GetEthBalance("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	assert.Nil(t, resp)
	assert.Error(t, err)
}

func TestNewClientDefaultsAPIKey(t *testing.T) {
	var query url.Values
	client := newTestClient(t, "", ChainMainnet, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"status":"1","message":"OK","result":"0"}`))
	})

	_, err := client.GetEthBalance("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIKey, query.Get("apikey"))
}

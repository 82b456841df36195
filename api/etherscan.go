package api

import "fmt"

// GetGasPrices fetches the current gas price estimates from the gas
// oracle. On success the full envelope is returned; decode Result into a
// GasOracleResult for the individual figures.
func (c *Client) GetGasPrices() (*Response, error) {
	resp, err := c.get("gastracker", "gasoracle", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas prices: %w", err)
	}
	return resp, nil
}

// GetTokenBalance fetches the ERC-20 token balance a wallet holds for one
// contract. Result is the raw balance as a decimal string, in the token's
// smallest unit. Addresses are forwarded as given; the API validates them.
func (c *Client) GetTokenBalance(contractAddress, walletAddress string) (*Response, error) {
	resp, err := c.get("account", "tokenbalance", map[string]string{
		"contractaddress": contractAddress,
		"address":         walletAddress,
		"tag":             "latest",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token balance: %w", err)
	}
	return resp, nil
}

// GetEthBalance fetches the native coin balance of a wallet. Result is
// the balance in wei as a decimal string.
func (c *Client) GetEthBalance(walletAddress string) (*Response, error) {
	resp, err := c.get("account", "balance", map[string]string{
		"address": walletAddress,
		"tag":     "latest",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return resp, nil
}

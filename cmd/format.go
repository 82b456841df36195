package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// formatUnits converts a raw integer balance string into whole units,
// shifting the decimal point left by the token's decimals. ETH and most
// ERC-20 tokens use 18; USDT uses 6.
func formatUnits(raw string, decimals int32) (string, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("invalid balance %q: %w", raw, err)
	}
	return value.Shift(-decimals).StringFixed(6), nil
}

// orNA substitutes a placeholder for fields the API left empty.
func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUnits(t *testing.T) {
	// 1.5 ETH in wei
	got, err := formatUnits("1500000000000000000", 18)
	require.NoError(t, err)
	assert.Equal(t, "1.500000", got)

	// 123.456789 USDT, 6 decimals
	got, err = formatUnits("123456789", 6)
	require.NoError(t, err)
	assert.Equal(t, "123.456789", got)

	got, err = formatUnits("0", 18)
	require.NoError(t, err)
	assert.Equal(t, "0.000000", got)

	_, err = formatUnits("not-a-number", 18)
	assert.Error(t, err)
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "20", orNA("20"))
}

func TestResolveChain(t *testing.T) {
	id, err := resolveChain("137")
	require.NoError(t, err)
	assert.Equal(t, int64(137), id)

	id, err = resolveChain("sepolia")
	require.NoError(t, err)
	assert.Equal(t, int64(11155111), id)

	// unknown numeric IDs pass through unvalidated
	id, err = resolveChain("424242")
	require.NoError(t, err)
	assert.Equal(t, int64(424242), id)

	_, err = resolveChain("0")
	assert.Error(t, err)

	_, err = resolveChain("-1")
	assert.Error(t, err)

	_, err = resolveChain("dogechain")
	assert.Error(t, err)
}

package api

import "time"

// Etherscan v2 unified endpoint. One URL serves every chain; the target
// network is selected with the chainid query parameter.
const BaseURL = "https://api.etherscan.io/v2/api"

// RequestTimeout bounds every call to the API.
const RequestTimeout = 10 * time.Second

// DefaultAPIKey is the placeholder from the Etherscan docs. Requests made
// with it are heavily throttled; supply a real key for actual use.
const DefaultAPIKey = "YourApiKeyToken"

// EIP-155 chain IDs
const (
	ChainMainnet int64 = 1
	ChainGoerli  int64 = 5 // deprecated
	ChainSepolia int64 = 11155111
	ChainPolygon int64 = 137
	ChainMumbai  int64 = 80001 // deprecated
	ChainAmoy    int64 = 80002
)

// chainNames maps network names accepted on the command line to chain IDs.
var chainNames = map[string]int64{
	"ethereum": ChainMainnet,
	"mainnet":  ChainMainnet,
	"goerli":   ChainGoerli,
	"sepolia":  ChainSepolia,
	"polygon":  ChainPolygon,
	"mumbai":   ChainMumbai,
	"amoy":     ChainAmoy,
}

// chainLabels holds the display name for each known chain ID.
var chainLabels = map[int64]string{
	ChainMainnet: "Ethereum Mainnet",
	ChainGoerli:  "Goerli Testnet (deprecated)",
	ChainSepolia: "Sepolia Testnet",
	ChainPolygon: "Polygon Mainnet",
	ChainMumbai:  "Polygon Mumbai Testnet (deprecated)",
	ChainAmoy:    "Polygon Amoy Testnet",
}

// LookupChain resolves a network name to its chain ID.
func LookupChain(name string) (int64, bool) {
	id, ok := chainNames[name]
	return id, ok
}

// ChainLabel returns a human-readable name for a chain ID. Unknown IDs are
// passed to the API unvalidated, so the fallback is just a generic label.
func ChainLabel(id int64) string {
	if label, ok := chainLabels[id]; ok {
		return label
	}
	return "Unknown Chain"
}

// KnownChains returns the known chain IDs in ascending order.
func KnownChains() []int64 {
	return []int64{ChainMainnet, ChainGoerli, ChainPolygon, ChainMumbai, ChainAmoy, ChainSepolia}
}

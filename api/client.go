package api

// API Client-
//
// Files:
//   config.go     - Base URL, request timeout and chain ID constants
//   types.go      - Struct definitions (response envelope, gas oracle, APIError)
//   base.go       - Core client functionality (client struct, NewClient, shared GET)
//   etherscan.go  - Etherscan v2 operations (gas oracle, token balance, ETH balance)
//
// Usage:
//   client := api.NewClient("YourApiKeyToken", api.ChainMainnet)  // from base.go
//   gas, err := client.GetGasPrices()                             // from etherscan.go
//   bal, err := client.GetEthBalance(address)                     // from etherscan.go
//
// Every request carries the chainid query parameter. The v2 API rejects
// calls without it, which is the whole reason this client exists.

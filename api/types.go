package api

import "encoding/json"

// Response is the Etherscan envelope common to every operation. Status is
// "1" on success; Result varies per operation (an object for the gas
// oracle, a decimal wei string for balances) so it is kept raw for the
// caller to decode.
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// DecodeResult unmarshals the operation-specific result payload into v.
func (r *Response) DecodeResult(v interface{}) error {
	return json.Unmarshal(r.Result, v)
}

// GasOracleResult is the result payload of the gastracker/gasoracle
// action. All figures are reported as strings, prices in Gwei.
type GasOracleResult struct {
	LastBlock       string `json:"LastBlock"`
	SafeGasPrice    string `json:"SafeGasPrice"`
	ProposeGasPrice string `json:"ProposeGasPrice"`
	FastGasPrice    string `json:"FastGasPrice"`
	SuggestBaseFee  string `json:"suggestBaseFee"`
	GasUsedRatio    string `json:"gasUsedRatio"`
}

// APIError is returned when the API answers with a non-"1" status. The
// service reports rate limiting, bad keys and empty results all through
// the same status field, so no finer classification is possible; Message
// carries whatever text the service supplied.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "API returned error: " + e.Message
}

package cache

import "encoding/json"

const keyPrefix = "api:"

// GenerateKey derives a deterministic cache key for an endpoint and its
// parameters. Parameters are serialized as compact JSON with keys in sorted
// order, so semantically equal parameter sets produce identical keys
// regardless of insertion order. Empty params yield no suffix.
func GenerateKey(endpoint string, params map[string]any) string {
	key := keyPrefix + endpoint
	if len(params) == 0 {
		return key
	}

	// encoding/json writes map keys in sorted (ordinal) order, which is the
	// determinism this key depends on.
	b, err := json.Marshal(params)
	if err != nil {
		// Unserializable params cannot produce a stable suffix; fall back to
		// the endpoint-only key rather than a nondeterministic one.
		return key
	}
	return key + ":" + string(b)
}

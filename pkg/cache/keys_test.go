package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateKey(t *testing.T) {
	key := GenerateKey("prices", map[string]any{"b": 2, "a": 1})
	assert.Equal(t, `api:prices:{"a":1,"b":2}`, key)

	// Same parameters, same key, whatever order they were assembled in.
	other := map[string]any{}
	other["a"] = 1
	other["b"] = 2
	assert.Equal(t, key, GenerateKey("prices", other))
}

func TestGenerateKeyEmptyParams(t *testing.T) {
	assert.Equal(t, "api:prices", GenerateKey("prices", nil))
	assert.Equal(t, "api:prices", GenerateKey("prices", map[string]any{}))
}

func TestGenerateKeyUnserializableParams(t *testing.T) {
	// Values JSON cannot encode fall back to the endpoint-only key.
	assert.Equal(t, "api:prices", GenerateKey("prices", map[string]any{"ch": make(chan int)}))
}

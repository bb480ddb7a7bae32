package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNeverReturnsNil(t *testing.T) {
	assert.NotNil(t, New(false))
	assert.NotNil(t, New(true))
}

func TestDisabledLoggerIsSafe(t *testing.T) {
	log := New(false)
	log.Info("ignored")
	log.Error("ignored")
}

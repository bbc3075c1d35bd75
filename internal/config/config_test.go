package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlenaMolokova/checkout/internal/constants"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, constants.DefaultBackendAddr, cfg.BackendAddr)
	assert.Equal(t, constants.DefaultLookupDelay, cfg.LookupDelay)
	assert.Equal(t, constants.DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, constants.DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.RemoteFieldChecks)
}

func TestNewConfigFlags(t *testing.T) {
	cfg, err := NewConfig([]string{"-r", "http://api.local:9000", "-d", "700ms", "-t", "3s", "-l", "debug", "-c"})
	require.NoError(t, err)

	assert.Equal(t, "http://api.local:9000", cfg.BackendAddr)
	assert.Equal(t, 700*time.Millisecond, cfg.LookupDelay)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.RemoteFieldChecks)
}

func TestNewConfigEnvOverridesFlags(t *testing.T) {
	t.Setenv("CHECKOUT_API_ADDRESS", "https://checkout.example.com")
	t.Setenv("LOOKUP_DELAY", "650ms")
	t.Setenv("REMOTE_FIELD_CHECKS", "true")

	cfg, err := NewConfig([]string{"-r", "http://ignored:1", "-d", "1s"})
	require.NoError(t, err)

	assert.Equal(t, "https://checkout.example.com", cfg.BackendAddr)
	assert.Equal(t, 650*time.Millisecond, cfg.LookupDelay)
	assert.True(t, cfg.RemoteFieldChecks)
}

func TestNewConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "relative backend address", args: []string{"-r", "localhost:8080"}},
		{name: "zero delay", args: []string{"-d", "0s"}},
		{name: "negative timeout", args: []string{"-t", "-1s"}},
		{name: "unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(tt.args)
			assert.Error(t, err)
		})
	}
}

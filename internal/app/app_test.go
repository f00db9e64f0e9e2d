package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	// Set required environment variables for test
	t.Setenv("TELEGRAM_TOKEN", "test-token-123")
	t.Setenv("API_MARKET_KEY", "test-key-456")

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}

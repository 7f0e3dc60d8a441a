package observability

import (
	"context"
	"testing"

	"productivity_api/internal/infrastructure/config"
	"productivity_api/internal/infrastructure/logger"

	"github.com/stretchr/testify/require"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), &config.Config{}, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_Stdout(t *testing.T) {
	cfg := &config.Config{OTelEnabled: true, OTelServiceName: "productivity-api-test", OTelSampleRatio: 1}
	shutdown, err := InitTracing(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshub/config"
)

func TestInitProvider_Disabled(t *testing.T) {
	shutdown, err := InitProvider(context.Background(), config.OTelConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSignalURL(t *testing.T) {
	assert.Equal(t, "http://collector:4318/v1/traces", signalURL("http://collector:4318/", "traces"))
	assert.Equal(t, "http://collector:4318/v1/logs", signalURL("http://collector:4318", "logs"))
}

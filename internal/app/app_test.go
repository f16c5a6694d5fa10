package app_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serverless/modal-bridge/config"
	"github.com/serverless/modal-bridge/dispatch"
	"github.com/serverless/modal-bridge/internal/app"
)

func TestSetup_RemoteWithoutIntegrationPattern(t *testing.T) {
	t.Setenv(config.EnvSecretARN, "test-arn")
	t.Setenv(config.EnvAppName, "test-app")
	t.Setenv(config.EnvEnvironmentName, "main")
	t.Setenv(config.EnvFunctionName, "test-fn")
	t.Setenv(config.EnvRegion, "us-east-1")
	t.Setenv(config.EnvIntegrationPattern, "")
	os.Unsetenv(config.EnvIntegrationPattern)

	cfg, dispatcher, log := app.Setup(config.LoadRemote, false)

	assert.Equal(t, dispatch.ModeRemote, cfg.Mode)
	assert.NotNil(t, dispatcher.Credentials)
	assert.Equal(t, log, dispatcher.Log)
}

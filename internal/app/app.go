// Package app wires the handler dependencies for the binaries.
package app

import (
	"os"

	"go.uber.org/zap"

	"github.com/serverless/modal-bridge/config"
	"github.com/serverless/modal-bridge/credentials"
	"github.com/serverless/modal-bridge/dispatch"
	internalzap "github.com/serverless/modal-bridge/internal/zap"
	"github.com/serverless/modal-bridge/platform"
)

// InLambda returns true when the process runs in the Lambda execution environment.
func InLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// Setup loads configuration with load and creates the dispatcher. Configuration errors are fatal.
func Setup(load func() (*config.Config, error), development bool) (*config.Config, *dispatch.Dispatcher, *zap.Logger) {
	cfg, err := load()
	if err != nil {
		fatal(err)
	}

	log, err := internalzap.NewLogger(cfg.LogLevel, development)
	if err != nil {
		panic(err)
	}

	secrets, err := credentials.NewSecretsManager(cfg.Region)
	if err != nil {
		log.Fatal("Cannot create Secrets Manager client.", zap.Error(err))
	}

	log.Debug("Configuration loaded.", zap.Object("config", cfg))

	return cfg, &dispatch.Dispatcher{
		Credentials: secrets,
		Platform:    platform.Modal{},
		Log:         log,
	}, log
}

// Logger creates logger for handlers that don't need the full configuration.
func Logger(development bool) *zap.Logger {
	level, err := config.LogLevel()
	if err != nil {
		fatal(err)
	}

	log, err := internalzap.NewLogger(level, development)
	if err != nil {
		panic(err)
	}
	return log
}

func fatal(err error) {
	log, _ := zap.NewProduction()
	log.Fatal("Cannot load configuration.", zap.Error(err))
}

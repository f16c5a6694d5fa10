package config

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/serverless/modal-bridge/dispatch"
	"github.com/serverless/modal-bridge/function"
)

// Environment variables read by the handlers.
const (
	EnvSecretARN          = "MODAL_SECRET_ARN"
	EnvAppName            = "MODAL_APP_NAME"
	EnvEnvironmentName    = "MODAL_ENVIRONMENT_NAME"
	EnvFunctionName       = "MODAL_FUNCTION_NAME"
	EnvParameters         = "PARAMETERS"
	EnvIntegrationPattern = "MODAL_INTEGRATION_PATTERN"
	EnvLogLevel           = "LOG_LEVEL"
	EnvRegion             = "AWS_REGION"
)

// Config is the configuration of a deployed bridge function.
type Config struct {
	SecretID   string        `validate:"required"`
	Function   function.Ref
	Parameters interface{}
	Mode       dispatch.Mode `validate:"required"`
	LogLevel   zapcore.Level
	Region     string
}

// Request builds a dispatcher request for the event in the configured mode.
func (c Config) Request(event interface{}) dispatch.Request {
	return dispatch.Request{
		Event:      event,
		Parameters: c.Parameters,
		SecretID:   c.SecretID,
		Function:   c.Function,
		Mode:       c.Mode,
	}
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("secretId", c.SecretID)
	enc.AddObject("function", c.Function)
	enc.AddString("mode", string(c.Mode))
	enc.AddString("logLevel", c.LogLevel.String())
	if c.Region != "" {
		enc.AddString("region", c.Region)
	}
	return enc.AddReflected("parameters", c.Parameters)
}

var envByField = map[string]string{
	"Config.SecretID":                 EnvSecretARN,
	"Config.Function.AppName":         EnvAppName,
	"Config.Function.EnvironmentName": EnvEnvironmentName,
	"Config.Function.Name":            EnvFunctionName,
	"Config.Mode":                     EnvIntegrationPattern,
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	return FromViper(New())
}

// LoadRemote reads configuration for handlers that always wait for the result.
// MODAL_INTEGRATION_PATTERN is optional and defaults to remote.
func LoadRemote() (*Config, error) {
	v := New()
	v.SetDefault("mode", string(dispatch.ModeRemote))
	return FromViper(v)
}

// New returns viper instance bound to the environment variables. Empty variables are treated as unset.
func New() *viper.Viper {
	v := viper.New()
	v.BindEnv("secret_id", EnvSecretARN)
	v.BindEnv("app_name", EnvAppName)
	v.BindEnv("environment_name", EnvEnvironmentName)
	v.BindEnv("function_name", EnvFunctionName)
	v.BindEnv("parameters", EnvParameters)
	v.BindEnv("mode", EnvIntegrationPattern)
	v.BindEnv("log_level", EnvLogLevel)
	v.BindEnv("region", EnvRegion)

	v.SetDefault("parameters", "{}")
	v.SetDefault("log_level", "info")
	return v
}

// FromViper decodes and validates configuration.
func FromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		SecretID: v.GetString("secret_id"),
		Function: function.Ref{
			AppName:         v.GetString("app_name"),
			EnvironmentName: v.GetString("environment_name"),
			Name:            v.GetString("function_name"),
		},
		Mode:   dispatch.Mode(v.GetString("mode")),
		Region: v.GetString("region"),
	}

	err := validator.New().Struct(config)
	if err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			missing := []string{}
			for _, verr := range verrs {
				missing = append(missing, envByField[verr.Namespace()])
			}
			sort.Strings(missing)
			return nil, &ErrInvalidConfig{Message: "missing required environment variables: " + strings.Join(missing, ", ")}
		}
		return nil, &ErrInvalidConfig{Message: err.Error()}
	}

	err = json.Unmarshal([]byte(v.GetString("parameters")), &config.Parameters)
	if err != nil {
		return nil, &ErrInvalidConfig{Message: EnvParameters + " is not valid JSON: " + err.Error()}
	}

	config.LogLevel, err = logLevel(v)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// LogLevel reads only the log level. Used by handlers that don't call Modal functions.
func LogLevel() (zapcore.Level, error) {
	return logLevel(New())
}

func logLevel(v *viper.Viper) (zapcore.Level, error) {
	var level zapcore.Level
	err := level.UnmarshalText([]byte(v.GetString("log_level")))
	if err != nil {
		return level, &ErrInvalidConfig{Message: EnvLogLevel + ": " + err.Error()}
	}
	return level, nil
}

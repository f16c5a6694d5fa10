package config

import "fmt"

// ErrInvalidConfig occurs when environment doesn't contain valid configuration.
type ErrInvalidConfig struct {
	Message string
}

func (e ErrInvalidConfig) Error() string {
	return fmt.Sprintf("Invalid configuration: %s.", e.Message)
}

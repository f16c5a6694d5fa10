package credentials

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// ErrCredentialLookup occurs when credentials couldn't be read from the secret store.
type ErrCredentialLookup struct {
	SecretID string
	Original error
}

func (e ErrCredentialLookup) Error() string {
	return fmt.Sprintf("Credentials lookup in secret %q failed. Error: %q", e.SecretID, e.Original)
}

// NotFound returns true if the secret doesn't exist in the store.
func (e ErrCredentialLookup) NotFound() bool {
	if awserr, ok := e.Original.(awserr.Error); ok {
		return awserr.Code() == secretsmanager.ErrCodeResourceNotFoundException
	}
	return false
}

// Package platform connects to the remote execution platform hosting the functions.
package platform

import (
	"context"

	"github.com/serverless/modal-bridge/credentials"
	"github.com/serverless/modal-bridge/function"
)

// Client is an authenticated handle to the remote platform. It must be closed after use.
type Client interface {
	function.Resolver
	Close()
}

// Connector creates authenticated clients.
type Connector interface {
	Connect(ctx context.Context, creds credentials.Credentials) (Client, error)
}

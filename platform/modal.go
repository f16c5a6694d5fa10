package platform

import (
	"context"

	modal "github.com/modal-labs/libmodal/modal-go"
	"github.com/serverless/modal-bridge/credentials"
	"github.com/serverless/modal-bridge/function"
)

var _ Connector = Modal{}

// Modal connects to Modal with a token pair.
type Modal struct{}

// Connect creates new Modal client. Clients are never shared between invocations.
func (Modal) Connect(ctx context.Context, creds credentials.Credentials) (Client, error) {
	client, err := modal.NewClientWithOptions(&modal.ClientParams{
		TokenID:     creds.TokenID,
		TokenSecret: creds.TokenSecret,
	})
	if err != nil {
		return nil, &ErrClientConstruction{Original: err}
	}

	return &modalClient{client: client}, nil
}

type modalClient struct {
	client *modal.Client
}

func (c *modalClient) Function(ctx context.Context, ref function.Ref) (function.Invoker, error) {
	fn, err := c.client.Functions.FromName(ctx, ref.AppName, ref.Name, &modal.FunctionFromNameParams{
		Environment: ref.EnvironmentName,
	})
	if err != nil {
		return nil, err
	}

	return &modalFunction{fn: fn}, nil
}

func (c *modalClient) Close() {
	c.client.Close()
}

var _ modalCaller = (*modal.Function)(nil)

// modalCaller is the part of *modal.Function used to call functions.
type modalCaller interface {
	Remote(ctx context.Context, args []any, kwargs map[string]any) (any, error)
	Spawn(ctx context.Context, args []any, kwargs map[string]any) (*modal.FunctionCall, error)
}

type modalFunction struct {
	fn modalCaller
}

func (f *modalFunction) Remote(ctx context.Context, event interface{}, params interface{}) (interface{}, error) {
	return f.fn.Remote(ctx, []any{event, params}, nil)
}

func (f *modalFunction) Spawn(ctx context.Context, event interface{}, params interface{}) (function.CallID, error) {
	call, err := f.fn.Spawn(ctx, []any{event, params}, nil)
	if err != nil {
		return "", err
	}

	return function.CallID(call.FunctionCallID), nil
}

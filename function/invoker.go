package function

import "context"

// CallID identifies a call submitted to the remote platform without waiting for its result.
type CallID string

// Invoker is a resolved remote function. Event and parameters are passed as the two
// positional arguments of the call.
type Invoker interface {
	// Remote calls the function and blocks until it returns.
	Remote(ctx context.Context, event interface{}, params interface{}) (interface{}, error)
	// Spawn submits the call and returns without waiting for completion.
	Spawn(ctx context.Context, event interface{}, params interface{}) (CallID, error)
}

// Resolver looks up remote functions by reference.
type Resolver interface {
	Function(ctx context.Context, ref Ref) (Invoker, error)
}

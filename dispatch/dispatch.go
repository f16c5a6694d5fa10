package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/serverless/modal-bridge/credentials"
	"github.com/serverless/modal-bridge/function"
	"github.com/serverless/modal-bridge/metrics"
	"github.com/serverless/modal-bridge/platform"
)

// Request is a single invocation of a remote function.
type Request struct {
	Event      interface{}
	Parameters interface{}
	SecretID   string
	Function   function.Ref
	Mode       Mode
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface
func (r Request) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("secretId", r.SecretID)
	enc.AddObject("function", r.Function)
	enc.AddString("mode", string(r.Mode))
	enc.AddReflected("event", r.Event)
	enc.AddReflected("parameters", r.Parameters)

	return nil
}

// Dispatcher resolves credentials and the remote function, then calls it in the requested mode.
// It keeps no state between invocations.
type Dispatcher struct {
	Credentials credentials.Fetcher
	Platform    platform.Connector
	Log         *zap.Logger
}

// WithLogger returns a copy of the dispatcher logging to log.
func (d Dispatcher) WithLogger(log *zap.Logger) *Dispatcher {
	d.Log = log
	return &d
}

// Dispatch runs a single invocation. Errors are not retried.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (resp *Response, err error) {
	start := time.Now()
	defer func() {
		metrics.Invocations.WithLabelValues(req.Mode.label(), outcome(err)).Inc()
		metrics.InvocationDuration.WithLabelValues(req.Mode.label()).Observe(float64(time.Since(start)) / float64(time.Millisecond))

		if err != nil {
			d.Log.Error("Modal function invocation failed.", zap.Object("request", req), zap.Error(err))
		}
	}()

	err = req.Function.Validate()
	if err != nil {
		return nil, err
	}

	creds, err := d.Credentials.Fetch(ctx, req.SecretID)
	if err != nil {
		return nil, err
	}

	client, err := d.Platform.Connect(ctx, *creds)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	fn, err := client.Function(ctx, req.Function)
	if err != nil {
		return nil, &function.ErrFunctionResolution{Ref: req.Function, Original: err}
	}

	switch req.Mode {
	case ModeRemote:
		d.Log.Info("Remote invoking Modal function.", zap.Object("request", req))

		result, err := fn.Remote(ctx, req.Event, req.Parameters)
		if err != nil {
			return nil, &function.ErrFunctionCallFailed{Original: err}
		}

		d.Log.Debug("Modal function returned.", zap.Object("function", req.Function), zap.Reflect("result", result))
		return success(&Result{Result: result}), nil
	case ModeSpawn:
		d.Log.Info("Spawning Modal function.", zap.Object("request", req))

		callID, err := fn.Spawn(ctx, req.Event, req.Parameters)
		if err != nil {
			return nil, &function.ErrFunctionCallFailed{Original: err}
		}

		d.Log.Info("Modal function spawned.", zap.Object("function", req.Function), zap.String("functionCallId", string(callID)))
		return success(&SpawnedCall{FunctionCallID: callID}), nil
	default:
		return nil, &ErrUnsupportedMode{Mode: req.Mode}
	}
}

func outcome(err error) string {
	switch err.(type) {
	case nil:
		return "success"
	case *function.ErrFunctionValidation:
		return "validation_error"
	case *credentials.ErrCredentialLookup:
		return "credentials_error"
	case *platform.ErrClientConstruction:
		return "client_error"
	case *function.ErrFunctionResolution:
		return "resolution_error"
	case *function.ErrFunctionCallFailed:
		return "call_error"
	case *ErrUnsupportedMode:
		return "unsupported_mode"
	default:
		return "error"
	}
}

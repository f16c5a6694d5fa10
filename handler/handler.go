// Package handler contains Lambda entry points invoking Modal functions.
package handler

import (
	"context"

	"github.com/serverless/modal-bridge/config"
	"github.com/serverless/modal-bridge/dispatch"
	internalzap "github.com/serverless/modal-bridge/internal/zap"
)

// Function invokes the configured function in the configured integration pattern.
type Function struct {
	Dispatcher *dispatch.Dispatcher
	Config     *config.Config
}

// Handle handles a single Lambda event.
func (f Function) Handle(ctx context.Context, event interface{}) (*dispatch.Response, error) {
	return f.dispatch(ctx, f.Config.Request(event))
}

func (f Function) dispatch(ctx context.Context, req dispatch.Request) (*dispatch.Response, error) {
	dispatcher := f.Dispatcher.WithLogger(internalzap.WithLambdaContext(ctx, f.Dispatcher.Log))
	return dispatcher.Dispatch(ctx, req)
}

// Remote always waits for the function result, ignoring the configured integration pattern.
type Remote struct {
	Function
}

// Handle handles a single Lambda event.
func (r Remote) Handle(ctx context.Context, event interface{}) (*dispatch.Response, error) {
	req := r.Config.Request(event)
	req.Mode = dispatch.ModeRemote
	return r.dispatch(ctx, req)
}

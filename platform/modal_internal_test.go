package platform

import (
	"context"
	"errors"
	"testing"

	modal "github.com/modal-labs/libmodal/modal-go"
	"github.com/stretchr/testify/assert"

	"github.com/serverless/modal-bridge/function"
)

type fakeCaller struct {
	args   []any
	kwargs map[string]any
	result any
	call   *modal.FunctionCall
	err    error
}

func (f *fakeCaller) Remote(ctx context.Context, args []any, kwargs map[string]any) (any, error) {
	f.args, f.kwargs = args, kwargs
	return f.result, f.err
}

func (f *fakeCaller) Spawn(ctx context.Context, args []any, kwargs map[string]any) (*modal.FunctionCall, error) {
	f.args, f.kwargs = args, kwargs
	return f.call, f.err
}

var (
	testEvent  = map[string]interface{}{"input": "test"}
	testParams = map[string]interface{}{"format": "png"}
)

func TestModalFunctionRemote(t *testing.T) {
	caller := &fakeCaller{result: map[string]any{"data": "test"}}

	result, err := (&modalFunction{fn: caller}).Remote(context.Background(), testEvent, testParams)

	assert.Nil(t, err)
	assert.Equal(t, map[string]any{"data": "test"}, result)
	assert.Equal(t, []any{testEvent, testParams}, caller.args)
	assert.Nil(t, caller.kwargs)
}

func TestModalFunctionSpawn(t *testing.T) {
	caller := &fakeCaller{call: &modal.FunctionCall{FunctionCallID: "fc-abc123"}}

	callID, err := (&modalFunction{fn: caller}).Spawn(context.Background(), testEvent, testParams)

	assert.Nil(t, err)
	assert.Equal(t, function.CallID("fc-abc123"), callID)
	assert.Equal(t, []any{testEvent, testParams}, caller.args)
	assert.Nil(t, caller.kwargs)
}

func TestModalFunctionSpawnFailed(t *testing.T) {
	caller := &fakeCaller{err: errors.New("quota exceeded")}

	callID, err := (&modalFunction{fn: caller}).Spawn(context.Background(), testEvent, nil)

	assert.EqualError(t, err, "quota exceeded")
	assert.Equal(t, function.CallID(""), callID)
	assert.Equal(t, []any{testEvent, nil}, caller.args)
}

package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/serverless/modal-bridge/config"
	"github.com/serverless/modal-bridge/credentials"
	credentialsmock "github.com/serverless/modal-bridge/credentials/mock"
	"github.com/serverless/modal-bridge/dispatch"
	"github.com/serverless/modal-bridge/function"
	functionmock "github.com/serverless/modal-bridge/function/mock"
	"github.com/serverless/modal-bridge/handler"
	platformmock "github.com/serverless/modal-bridge/platform/mock"
)

var (
	testConfig = &config.Config{
		SecretID:   "test-arn",
		Function:   function.Ref{AppName: "test-app", EnvironmentName: "main", Name: "test-fn"},
		Parameters: map[string]interface{}{},
		Mode:       dispatch.ModeSpawn,
	}
	testEvent = map[string]interface{}{"input": "test"}
)

func TestFunction_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, invoker, logs := setup(ctrl)
	invoker.EXPECT().Spawn(gomock.Any(), testEvent, map[string]interface{}{}).Return(function.CallID("call-123"), nil)
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-123"})

	resp, err := handler.Function{Dispatcher: dispatcher, Config: testConfig}.Handle(ctx, testEvent)

	assert.Nil(t, err)
	assert.Equal(t, &dispatch.Response{Status: "Success", Response: &dispatch.SpawnedCall{FunctionCallID: "call-123"}}, resp)
	entries := logs.FilterField(zap.String("awsRequestId", "req-123")).All()
	assert.NotEmpty(t, entries)
}

func TestFunction_HandleError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	fetcher := credentialsmock.NewMockFetcher(ctrl)
	lookupErr := &credentials.ErrCredentialLookup{SecretID: "test-arn", Original: errors.New("not found")}
	fetcher.EXPECT().Fetch(gomock.Any(), "test-arn").Return(nil, lookupErr)
	dispatcher := &dispatch.Dispatcher{Credentials: fetcher, Platform: platformmock.NewMockConnector(ctrl), Log: zap.NewNop()}

	resp, err := handler.Function{Dispatcher: dispatcher, Config: testConfig}.Handle(context.Background(), testEvent)

	assert.Nil(t, resp)
	assert.Equal(t, lookupErr, err)
}

func TestRemote_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, invoker, _ := setup(ctrl)
	invoker.EXPECT().Remote(gomock.Any(), testEvent, map[string]interface{}{}).Return("done", nil)

	resp, err := handler.Remote{Function: handler.Function{Dispatcher: dispatcher, Config: testConfig}}.Handle(context.Background(), testEvent)

	assert.Nil(t, err)
	assert.Equal(t, &dispatch.Response{Status: "Success", Response: &dispatch.Result{Result: "done"}}, resp)
}

func setup(ctrl *gomock.Controller) (*dispatch.Dispatcher, *functionmock.MockInvoker, *observer.ObservedLogs) {
	fetcher := credentialsmock.NewMockFetcher(ctrl)
	connector := platformmock.NewMockConnector(ctrl)
	client := platformmock.NewMockClient(ctrl)
	invoker := functionmock.NewMockInvoker(ctrl)
	creds := &credentials.Credentials{TokenID: "test-id", TokenSecret: "test-secret"}

	fetcher.EXPECT().Fetch(gomock.Any(), "test-arn").Return(creds, nil)
	connector.EXPECT().Connect(gomock.Any(), *creds).Return(client, nil)
	client.EXPECT().Function(gomock.Any(), testConfig.Function).Return(invoker, nil)
	client.EXPECT().Close()

	core, logs := observer.New(zapcore.InfoLevel)
	return &dispatch.Dispatcher{Credentials: fetcher, Platform: connector, Log: zap.New(core)}, invoker, logs
}

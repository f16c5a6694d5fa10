package zap_test

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	uberzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/serverless/modal-bridge/internal/zap"
)

func TestNewLogger(t *testing.T) {
	for _, development := range []bool{false, true} {
		log, err := zap.NewLogger(zapcore.WarnLevel, development)

		assert.Nil(t, err)
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
	}
}

func TestWithLambdaContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-123"})

	zap.WithLambdaContext(ctx, uberzap.New(core)).Info("test")
	zap.WithLambdaContext(context.Background(), uberzap.New(core)).Info("test")

	entries := logs.AllUntimed()
	assert.Equal(t, map[string]interface{}{"awsRequestId": "req-123"}, entries[0].ContextMap())
	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap())
}

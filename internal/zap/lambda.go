package zap

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

// WithLambdaContext attaches the Lambda request id to the logger when ctx carries one.
func WithLambdaContext(ctx context.Context, log *zap.Logger) *zap.Logger {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok {
		return log
	}
	return log.With(zap.String("awsRequestId", lc.AwsRequestID))
}

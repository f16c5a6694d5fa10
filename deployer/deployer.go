// Package deployer handles the CloudFormation custom resource lifecycle of a Modal app.
//
// Create, update and delete events are only logged. Nothing is deployed to or stopped on
// Modal; apps are expected to be deployed out of band.
package deployer

import (
	"context"

	"github.com/aws/aws-lambda-go/cfn"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	internalzap "github.com/serverless/modal-bridge/internal/zap"
)

// ResourceType is the CloudFormation type of the Modal app custom resource.
const ResourceType = "Custom::ModalApp"

// Handler handles custom resource events. Use cfn.LambdaWrap to send responses back to CloudFormation.
type Handler struct {
	Log *zap.Logger
}

// Handle logs the lifecycle event and reports success.
func (h Handler) Handle(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	log := internalzap.WithLambdaContext(ctx, h.Log)

	switch event.RequestType {
	case cfn.RequestCreate, cfn.RequestUpdate:
		log.Info("Deploying Modal app.", zap.Object("event", lifecycleEvent(event)))
	case cfn.RequestDelete:
		log.Info("Stopping Modal app.", zap.Object("event", lifecycleEvent(event)))
	default:
		return "", nil, &ErrUnsupportedRequestType{RequestType: event.RequestType}
	}

	return PhysicalResourceID(event), nil, nil
}

// PhysicalResourceID keeps the id assigned on create so updates don't trigger a replacement.
func PhysicalResourceID(event cfn.Event) string {
	if event.PhysicalResourceID != "" {
		return event.PhysicalResourceID
	}
	return "modal-app-" + event.LogicalResourceID
}

type lifecycleEvent cfn.Event

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface. The presigned response URL is never logged.
func (e lifecycleEvent) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("requestType", string(e.RequestType))
	enc.AddString("requestId", e.RequestID)
	enc.AddString("resourceType", e.ResourceType)
	enc.AddString("logicalResourceId", e.LogicalResourceID)
	if e.PhysicalResourceID != "" {
		enc.AddString("physicalResourceId", e.PhysicalResourceID)
	}
	enc.AddString("stackId", e.StackID)
	if e.ResponseURL != "" {
		enc.AddString("responseURL", "*****")
	}
	return enc.AddReflected("resourceProperties", e.ResourceProperties)
}

// Package httpapi serves the Lambda handlers over HTTP for local development.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	uuid "github.com/satori/go.uuid"

	"github.com/serverless/modal-bridge/dispatch"
	"github.com/serverless/modal-bridge/function"
)

// Invoker handles invocation events.
type Invoker interface {
	Handle(ctx context.Context, event interface{}) (*dispatch.Response, error)
}

// LifecycleHandler handles CloudFormation custom resource events.
type LifecycleHandler interface {
	Handle(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error)
}

// HTTPAPI exposes the handlers as REST API.
type HTTPAPI struct {
	Invoker   Invoker
	Lifecycle LifecycleHandler
}

// RegisterRoutes register HTTP API routes
func (h HTTPAPI) RegisterRoutes(router *httprouter.Router) {
	router.GET("/v1/status", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {})
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.POST("/v1/invoke", h.invoke)
	router.POST("/v1/lifecycle", h.lifecycle)
}

func (h HTTPAPI) invoke(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	ctx := withRequestID(w, r)

	var event interface{}
	err := json.NewDecoder(r.Body).Decode(&event)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(NewErrMalformedJSON(err))
		return
	}

	resp, err := h.Invoker.Handle(ctx, event)
	if err != nil {
		if _, ok := err.(*function.ErrFunctionResolution); ok {
			w.WriteHeader(http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		encoder.Encode(&Response{Errors: []Error{{Message: err.Error()}}})
	} else {
		encoder.Encode(resp)
	}
}

func (h HTTPAPI) lifecycle(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	ctx := withRequestID(w, r)

	event := cfn.Event{}
	err := json.NewDecoder(r.Body).Decode(&event)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encoder.Encode(NewErrMalformedJSON(err))
		return
	}

	physicalID, data, err := h.Lifecycle.Handle(ctx, event)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		encoder.Encode(&Response{Errors: []Error{{Message: err.Error()}}})
		return
	}

	resp := cfn.NewResponse(&event)
	resp.Status = cfn.StatusSuccess
	resp.PhysicalResourceID = physicalID
	resp.Data = data
	encoder.Encode(resp)
}

// withRequestID assigns request id the same way Lambda does, so handlers log it as the AWS request id.
func withRequestID(w http.ResponseWriter, r *http.Request) context.Context {
	requestID := uuid.NewV4().String()
	w.Header().Set("X-Request-Id", requestID)
	return lambdacontext.NewContext(r.Context(), &lambdacontext.LambdaContext{AwsRequestID: requestID})
}

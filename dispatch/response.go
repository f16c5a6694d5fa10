package dispatch

import "github.com/serverless/modal-bridge/function"

// StatusSuccess is the only status ever returned. Failures are returned as errors.
const StatusSuccess = "Success"

// Response is the envelope returned by the handlers.
type Response struct {
	Status   string      `json:"status"`
	Response interface{} `json:"response"`
}

// Result wraps the value returned by a blocking call.
type Result struct {
	Result interface{} `json:"result"`
}

// SpawnedCall wraps the id of a call submitted without waiting.
type SpawnedCall struct {
	FunctionCallID function.CallID `json:"function_call_id"`
}

func success(payload interface{}) *Response {
	return &Response{Status: StatusSuccess, Response: payload}
}

package httpapi

import "fmt"

// Response is a generic error response object from the local API.
type Response struct {
	Errors []Error `json:"errors"`
}

// Error represents generic HTTP error returned by the local API.
type Error struct {
	Message string `json:"message"`
}

// NewErrMalformedJSON creates response for payload that couldn't be decoded.
func NewErrMalformedJSON(err error) *Response {
	return &Response{Errors: []Error{{Message: fmt.Sprintf("Malformed JSON payload: %s.", err.Error())}}}
}

package function_test

import (
	"errors"
	"testing"

	"github.com/serverless/modal-bridge/function"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestValidate(t *testing.T) {
	for _, testCase := range validateTests {
		err := testCase.ref.Validate()

		assert.Equal(t, testCase.expectedError, err)
	}
}

func TestString(t *testing.T) {
	ref := function.Ref{AppName: "demo-modal-app", EnvironmentName: "main", Name: "process_image"}

	assert.Equal(t, "main/demo-modal-app/process_image", ref.String())
}

func TestMarshalLogObject(t *testing.T) {
	enc := zapcore.NewMapObjectEncoder()

	function.Ref{AppName: "test-app", EnvironmentName: "main", Name: "test-fn"}.MarshalLogObject(enc)

	assert.Equal(t, map[string]interface{}{
		"appName":         "test-app",
		"environmentName": "main",
		"functionName":    "test-fn",
	}, enc.Fields)
}

func TestErrFunctionResolution(t *testing.T) {
	err := &function.ErrFunctionResolution{
		Ref:      function.Ref{AppName: "test-app", EnvironmentName: "main", Name: "test-fn"},
		Original: errors.New("app not found"),
	}

	assert.EqualError(t, err, `Function "main/test-app/test-fn" couldn't be resolved. Error: "app not found"`)
}

var validateTests = []struct {
	ref           function.Ref
	expectedError error
}{
	{
		function.Ref{AppName: "test-app", EnvironmentName: "main", Name: "test-fn"},
		nil,
	},
	{
		function.Ref{EnvironmentName: "main", Name: "test-fn"},
		&function.ErrFunctionValidation{Message: "Missing required fields for Modal function."},
	},
	{
		function.Ref{AppName: "test-app", Name: "test-fn"},
		&function.ErrFunctionValidation{Message: "Missing required fields for Modal function."},
	},
	{
		function.Ref{AppName: "test-app", EnvironmentName: "main"},
		&function.ErrFunctionValidation{Message: "Missing required fields for Modal function."},
	},
}

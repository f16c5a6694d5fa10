package function

import (
	"fmt"
)

// ErrFunctionValidation occurs when function reference doesn't validate.
type ErrFunctionValidation struct {
	Message string
}

func (e ErrFunctionValidation) Error() string {
	return fmt.Sprintf("Function doesn't validate. Validation error: %q", e.Message)
}

// ErrFunctionResolution occurs when the remote platform couldn't resolve the function.
type ErrFunctionResolution struct {
	Ref      Ref
	Original error
}

func (e ErrFunctionResolution) Error() string {
	return fmt.Sprintf("Function %q couldn't be resolved. Error: %q", e.Ref.String(), e.Original)
}

// ErrFunctionCallFailed occurs when function call failed because of platform or runtime error.
type ErrFunctionCallFailed struct {
	Original error
}

func (e ErrFunctionCallFailed) Error() string {
	return fmt.Sprintf("Function call failed. Error: %q", e.Original)
}

package deployer

import (
	"fmt"

	"github.com/aws/aws-lambda-go/cfn"
)

// ErrUnsupportedRequestType occurs when CloudFormation sends unknown lifecycle request.
type ErrUnsupportedRequestType struct {
	RequestType cfn.RequestType
}

func (e ErrUnsupportedRequestType) Error() string {
	return fmt.Sprintf("Unsupported custom resource request type: %q.", string(e.RequestType))
}

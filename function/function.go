package function

import (
	"go.uber.org/zap/zapcore"
	validator "gopkg.in/go-playground/validator.v9"
)

// Ref identifies a function deployed on the remote platform.
type Ref struct {
	AppName         string `json:"appName" validate:"required"`
	EnvironmentName string `json:"environmentName" validate:"required"`
	Name            string `json:"functionName" validate:"required"`
}

// Validate checks that all parts of the reference are set.
func (r Ref) Validate() error {
	validate := validator.New()
	err := validate.Struct(r)
	if err != nil {
		return &ErrFunctionValidation{Message: "Missing required fields for Modal function."}
	}
	return nil
}

func (r Ref) String() string {
	return r.EnvironmentName + "/" + r.AppName + "/" + r.Name
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface
func (r Ref) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("appName", r.AppName)
	enc.AddString("environmentName", r.EnvironmentName)
	enc.AddString("functionName", r.Name)

	return nil
}

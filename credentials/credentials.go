package credentials

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"go.uber.org/zap/zapcore"
	validator "gopkg.in/go-playground/validator.v9"
)

// Credentials is a token pair used to authenticate to the remote platform.
type Credentials struct {
	TokenID     string `json:"MODAL_TOKEN_ID" validate:"required"`
	TokenSecret string `json:"MODAL_TOKEN_SECRET" validate:"required"`
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface.
func (c Credentials) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if c.TokenID != "" {
		enc.AddString("tokenId", "*****")
	}
	if c.TokenSecret != "" {
		enc.AddString("tokenSecret", "*****")
	}
	return nil
}

// Fetcher retrieves credentials stored under a secret identifier.
type Fetcher interface {
	Fetch(ctx context.Context, secretID string) (*Credentials, error)
}

// SecretsAPI is the part of secretsmanageriface.SecretsManagerAPI used for reading secrets.
type SecretsAPI interface {
	GetSecretValueWithContext(aws.Context, *secretsmanager.GetSecretValueInput, ...request.Option) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManager reads credentials stored as a JSON secret string in AWS Secrets Manager.
type SecretsManager struct {
	Service SecretsAPI
}

// NewSecretsManager creates Secrets Manager backed Fetcher. Empty region falls back to
// the AWS SDK default resolution (AWS_REGION in Lambda).
func NewSecretsManager(region string) (*SecretsManager, error) {
	config := aws.NewConfig()
	if region != "" {
		config = config.WithRegion(region)
	}

	awsSession, err := session.NewSession(config)
	if err != nil {
		return nil, errors.New("unable to create AWS Session: " + err.Error())
	}

	return &SecretsManager{Service: secretsmanager.New(awsSession)}, nil
}

// Fetch reads the secret and decodes the token pair. The secret is read on every call.
func (s SecretsManager) Fetch(ctx context.Context, secretID string) (*Credentials, error) {
	output, err := s.Service.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return nil, &ErrCredentialLookup{SecretID: secretID, Original: err}
	}

	if output.SecretString == nil {
		return nil, &ErrCredentialLookup{SecretID: secretID, Original: errors.New("secret has no string value")}
	}

	creds := &Credentials{}
	err = json.Unmarshal([]byte(*output.SecretString), creds)
	if err != nil {
		return nil, &ErrCredentialLookup{SecretID: secretID, Original: errors.New("malformed secret: " + err.Error())}
	}

	err = validator.New().Struct(creds)
	if err != nil {
		return nil, &ErrCredentialLookup{SecretID: secretID, Original: errors.New("secret must contain MODAL_TOKEN_ID and MODAL_TOKEN_SECRET")}
	}

	return creds, nil
}

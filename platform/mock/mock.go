//go:generate mockgen -package mock -destination ./platform.go github.com/serverless/modal-bridge/platform Connector,Client

package mock

//go:generate mockgen -package mock -destination ./secrets.go github.com/serverless/modal-bridge/credentials SecretsAPI,Fetcher

package mock

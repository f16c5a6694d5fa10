//go:generate mockgen -package mock -destination ./invoker.go github.com/serverless/modal-bridge/function Invoker

package mock

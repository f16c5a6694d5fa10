//go:generate mockgen -package mock -destination ./httpapi.go github.com/serverless/modal-bridge/httpapi Invoker,LifecycleHandler

package mock

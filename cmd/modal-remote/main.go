// Command modal-remote always calls the configured Modal function in remote mode and waits for its result.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/serverless/modal-bridge/config"
	"github.com/serverless/modal-bridge/handler"
	"github.com/serverless/modal-bridge/internal/app"
)

func main() {
	cfg, dispatcher, log := app.Setup(config.LoadRemote, false)
	defer log.Sync()

	lambda.Start(handler.Remote{Function: handler.Function{Dispatcher: dispatcher, Config: cfg}}.Handle)
}

// Command modal-deployer handles the Custom::ModalApp CloudFormation custom resource.
package main

import (
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/serverless/modal-bridge/deployer"
	"github.com/serverless/modal-bridge/internal/app"
)

func main() {
	log := app.Logger(false)
	defer log.Sync()

	lambda.Start(cfn.LambdaWrap(deployer.Handler{Log: log}.Handle))
}

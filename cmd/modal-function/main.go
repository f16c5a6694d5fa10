package main

import (
	"flag"
	"os"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/serverless/modal-bridge/config"
	"github.com/serverless/modal-bridge/deployer"
	"github.com/serverless/modal-bridge/handler"
	"github.com/serverless/modal-bridge/httpapi"
	"github.com/serverless/modal-bridge/internal/app"
	"github.com/serverless/modal-bridge/metrics"
	"github.com/serverless/modal-bridge/util"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "Show version.")
	developmentMode := flag.Bool("dev", false, "Serve the handler over HTTP instead of running in Lambda. Implied outside of Lambda.")
	port := flag.Uint("port", 4000, "Port to serve local API on.")
	tlsCrt := flag.String("tls-cert", "", "Path to local API TLS certificate file.")
	tlsKey := flag.String("tls-key", "", "Path to local API TLS key file.")
	flag.Parse()

	if *showVersion {
		println(version)
		os.Exit(0)
	}

	local := *developmentMode || !app.InLambda()
	cfg, dispatcher, log := app.Setup(config.Load, local)
	defer log.Sync()

	fn := handler.Function{Dispatcher: dispatcher, Config: cfg}

	if !local {
		lambda.Start(fn.Handle)
		return
	}

	// Collectors are only exposed by the local server's /metrics endpoint.
	metrics.Register(prometheus.DefaultRegisterer)

	shutdownGuard := util.NewShutdownGuard()
	shutdownGuard.ShutdownOnSignal(os.Interrupt, syscall.SIGTERM)

	httpapi.StartLocalAPI(
		httpapi.HTTPAPI{Invoker: fn, Lifecycle: deployer.Handler{Log: log}},
		httpapi.ServerConfig{
			Log:           log,
			TLSCrt:        *tlsCrt,
			TLSKey:        *tlsKey,
			Port:          *port,
			ShutdownGuard: shutdownGuard,
		})
	log.Info("Running in development mode.", zap.Uint("port", *port), zap.Object("config", cfg))

	shutdownGuard.Wait()
}

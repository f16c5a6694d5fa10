package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/serverless/modal-bridge/metrics"
)

// StartLocalAPI creates a new local API server and listens for requests.
func StartLocalAPI(api HTTPAPI, config ServerConfig) Server {
	router := httprouter.New()
	api.RegisterRoutes(router)

	// Remote calls block until the function returns, so there is no write timeout.
	handler := &http.Server{
		Addr: ":" + strconv.Itoa(int(config.Port)),
		Handler: cors.AllowAll().Handler(metrics.HTTPLogger{
			Handler:         router,
			RequestDuration: metrics.RequestDuration,
			Log:             config.Log,
		}),
		ReadTimeout: 3 * time.Second,
	}

	server := Server{
		Config:      config,
		HTTPHandler: handler,
	}

	config.ShutdownGuard.Add(1)
	go func() {
		server.Listen()
		config.ShutdownGuard.Done()
	}()

	return server
}

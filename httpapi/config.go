package httpapi

import (
	"crypto/tls"

	"go.uber.org/zap"

	"github.com/serverless/modal-bridge/util"
)

// ServerConfig contains information for an HTTP listener to interact with its environment.
type ServerConfig struct {
	Log           *zap.Logger
	TLSCrt        string
	TLSKey        string
	Port          uint
	ShutdownGuard *util.ShutdownGuard
}

var tlsConf = &tls.Config{
	MinVersion:       tls.VersionTLS12,
	CurvePreferences: []tls.CurveID{tls.CurveP521, tls.CurveP384, tls.CurveP256},
	CipherSuites: []uint16{
		tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
		tls.TLS_ECDHE_RSA_WITH_AES_256_CBC_SHA,
		tls.TLS_RSA_WITH_AES_256_GCM_SHA384,
		tls.TLS_RSA_WITH_AES_256_CBC_SHA,
	},
}

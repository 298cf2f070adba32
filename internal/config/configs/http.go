package configs

import "time"

// HTTP configures the HTTP server.
type HTTP struct {
	// Port is the TCP port to listen on.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds how long graceful shutdown waits for
	// in-flight requests.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

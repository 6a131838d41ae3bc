package configs

// HTTP defines configuration for the console HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown, in seconds.
	ShutdownTimeout int `env:"SHUTDOWN_TIMEOUT" envDefault:"5"`
}

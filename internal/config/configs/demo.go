package configs

// Demo configures the local demo backend. It is never used unless
// Enabled is set, and every response served from it is labelled.
type Demo struct {
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Driver selects the store for demo ads: "sqlite" or "postgres".
	Driver     string `env:"DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"locket-demo.db"`
	// Seed inserts a handful of sample ads when the store is empty.
	Seed bool `env:"SEED" envDefault:"true"`
}

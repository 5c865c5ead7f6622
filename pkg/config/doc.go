// Package config loads typed configuration structs from environment
// variables.
//
// Values are read with github.com/caarlos0/env/v11 struct tags. A .env file
// in the working directory is applied once per process through
// github.com/joho/godotenv before the first struct is parsed; variables that
// are already set in the environment are never overridden by it.
//
// Each configuration type is parsed once and cached, so packages can call
// Load for the same type from several places and observe the same values:
//
//	type AppConfig struct {
//		Env          environment.Environment `env:"APP_ENV" envDefault:"development"`
//		ContentStore string                  `env:"CONTENT_STORE" envDefault:"sanity"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Tests that need to observe changed variables call Reset first.
package config

package main

import "github.com/outputfield/web/pkg/environment"

// Content store drivers.
const (
	storeSanity = "sanity"
	storeMongo  = "mongo"
	storeMemory = "memory"
)

type appConfig struct {
	Env          environment.Environment `env:"APP_ENV" envDefault:"development"`
	Name         string                  `env:"APP_NAME" envDefault:"outputfield-web"`
	ContentStore string                  `env:"CONTENT_STORE" envDefault:"sanity"`
	StaticDir    string                  `env:"STATIC_DIR" envDefault:"./static"`
	CORSOrigins  []string                `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

package sanity

import "time"

// Config identifies the project and dataset to write to.
type Config struct {
	ProjectID  string        `env:"SANITY_PROJECT_ID,required"`
	Dataset    string        `env:"SANITY_DATASET" envDefault:"production"`
	Token      string        `env:"SANITY_TOKEN,required"`
	APIVersion string        `env:"SANITY_API_VERSION" envDefault:"2021-06-07"`
	Timeout    time.Duration `env:"SANITY_TIMEOUT" envDefault:"10s"`
}

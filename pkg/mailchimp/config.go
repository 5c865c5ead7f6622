package mailchimp

import "time"

// Config holds the audience credentials.
type Config struct {
	APIKey     string        `env:"MAILCHIMP_API_KEY,required"`
	ListID     string        `env:"MAILCHIMP_LIST_ID,required"`
	Datacenter string        `env:"MAILCHIMP_DATACENTER_KEY,required"`
	Timeout    time.Duration `env:"MAILCHIMP_TIMEOUT" envDefault:"10s"`
}

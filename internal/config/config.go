package config

import "github.com/caarlos0/env/v11"

// Config is the relay server's environment-driven configuration. The
// access token is optional here on purpose: the relay reports a missing
// secret per request instead of refusing to start.
type Config struct {
	ListenAddr      string `env:"LISTEN_ADDR" envDefault:":8080"`
	MetricsAddr     string `env:"METRICS_ADDR" envDefault:":9091"`
	UpstreamBaseURL string `env:"CAPI_BASE_URL" envDefault:"https://graph.facebook.com/v18.0"`
	AccessToken     string `env:"CAPI_ACCESS_TOKEN"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}

package app

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/aussiebroadwan/frontpage/pkg/redditsdk"
)

// ConfigFileEnv names an optional .env, YAML or TOML file read before the environment.
const ConfigFileEnv = "FRONTPAGE_CONFIG"

type Config struct {
	Reddit struct {
		ClientID     string `env:"REDDIT_CLIENT_ID" env-description:"OAuth client id"`
		ClientSecret string `env:"REDDIT_CLIENT_SECRET" env-description:"OAuth client secret (optional for the refresh grant)"`
		RefreshToken string `env:"REDDIT_REFRESH_TOKEN" env-description:"Refresh token; selects the refresh grant when set"`
		Username     string `env:"REDDIT_USERNAME" env-description:"Account name for the password grant"`
		Password     string `env:"REDDIT_PASSWORD" env-description:"Account password for the password grant"`
		UserAgent    string `env:"REDDIT_USER_AGENT" env-description:"User-Agent sent upstream (default: frontpage/<version>)"`
		AuthURL      string `env:"REDDIT_AUTH_URL" env-default:"https://www.reddit.com" env-description:"Token host"`
		APIURL       string `env:"REDDIT_API_URL" env-default:"https://oauth.reddit.com" env-description:"Resource host"`
	}

	Upstream struct {
		Timeout           time.Duration `env:"UPSTREAM_TIMEOUT" env-default:"15s" env-description:"Per-request upstream timeout"`
		RequestsPerMinute int           `env:"UPSTREAM_REQUESTS_PER_MINUTE" env-default:"60" env-description:"Outbound request budget, 0 disables"`
	}

	APIKey              string        `env:"FRONTPAGE_API_KEY" env-description:"Shared key required on /api/*; empty disables the gate"`
	Env                 string        `env:"ENV" env-default:"dev" env-description:"Environment (dev, staging, prod)"`
	LogLevel            string        `env:"LOG_LEVEL" env-default:"info" env-description:"Log level (debug, info, warn, error)"`
	LogFormat           string        `env:"LOG_FORMAT" env-default:"json" env-description:"Log format (json, text)"`
	Port                int           `env:"PORT" env-default:"8080" env-description:"HTTP server port"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s" env-description:"Graceful shutdown timeout"`
}

// LoadConfig reads the configuration from the environment, after the file named by
// FRONTPAGE_CONFIG when set. Missing upstream credentials are not an error here; they
// surface per request and on /readyz.
func LoadConfig() (Config, error) {
	var cfg Config

	var err error
	if path := os.Getenv(ConfigFileEnv); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		help, _ := cleanenv.GetDescription(&cfg, nil)
		return Config{}, fmt.Errorf("failed to load config: %w\n%s", err, help)
	}

	if cfg.Reddit.UserAgent == "" {
		cfg.Reddit.UserAgent = "frontpage/" + BuildVersion
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d", cfg.Port)
	}

	return cfg, nil
}

// Credentials returns the upstream credentials.
func (c Config) Credentials() redditsdk.Credentials {
	return redditsdk.Credentials{
		ClientID:     c.Reddit.ClientID,
		ClientSecret: c.Reddit.ClientSecret,
		RefreshToken: c.Reddit.RefreshToken,
		Username:     c.Reddit.Username,
		Password:     c.Reddit.Password,
	}
}

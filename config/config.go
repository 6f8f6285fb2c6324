package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type (
	Config struct {
		Port           string   `env:"PORT" envDefault:"8080"`
		DatabaseURL    string   `env:"DB_URL"`
		SQLitePath     string   `env:"SQLITE_PATH" envDefault:"noteshare.db"`
		AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
		UploadDir      string   `env:"UPLOAD_DIR" envDefault:"uploads"`
		GoogleAPIKey   string   `env:"GOOGLE_API_KEY"`

		Auth AuthConfig    `envPrefix:"AUTH0_"`
		S3   StorageConfig `envPrefix:"S3_"`
	}

	// AuthConfig selects how bearer tokens are verified. With a Domain set,
	// tokens are checked against the provider's JWKS (RS256). Without one,
	// the server runs in dev mode and accepts HS256 tokens signed with
	// DevSecret.
	AuthConfig struct {
		Domain    string `env:"DOMAIN"`
		Audience  string `env:"AUDIENCE" envDefault:"noteshare-api"`
		DevSecret string `env:"DEV_SECRET" envDefault:"noteshare-dev-secret"`
		DevIssuer string `env:"DEV_ISSUER" envDefault:"noteshare-dev"`
	}

	// StorageConfig configures the optional S3 backend for uploaded files.
	// With no Endpoint, files are written to UploadDir on local disk.
	StorageConfig struct {
		Endpoint  string `env:"ENDPOINT"`
		AccessKey string `env:"ACCESS_KEY"`
		SecretKey string `env:"SECRET_KEY"`
		Bucket    string `env:"BUCKET" envDefault:"noteshare"`
		UseSSL    bool   `env:"USE_SSL" envDefault:"true"`
	}
)

// Load parses the full configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

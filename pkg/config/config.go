package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "warehub"

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

type Config struct {
	App     AppConfig
	Auth    AuthConfig
	Storage StorageConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Auth.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"WAREHUB_APP_ENV" required:"true"`
	Port         string `envconfig:"WAREHUB_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"WAREHUB_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"WAREHUB_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// AuthConfig holds the static API keys the gateway hands out to warehouse
// integrations. The admin key grants full access, the viewer key is
// read-only.
type AuthConfig struct {
	AdminKey  string `envconfig:"WAREHUB_API_ADMIN_KEY" required:"true"`
	ViewerKey string `envconfig:"WAREHUB_API_VIEWER_KEY"`
}

func (a AuthConfig) validate() error {
	if strings.TrimSpace(a.AdminKey) == "" {
		return fmt.Errorf("WAREHUB_API_ADMIN_KEY must not be blank")
	}
	if a.ViewerKey != "" && a.ViewerKey == a.AdminKey {
		return fmt.Errorf("WAREHUB_API_VIEWER_KEY must differ from the admin key")
	}
	return nil
}

// StorageConfig points the entity stores at their snapshot directory.
type StorageConfig struct {
	DataDir string `envconfig:"WAREHUB_DATA_DIR" default:"./data"`
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config resuelve la dirección del backend y opciones del cliente.
// Se carga una sola vez al arranque; nada la muta en runtime.
type Config struct {
	APIHost string `mapstructure:"API_HOST"`
	APIPort int    `mapstructure:"API_PORT"`

	HTTPTimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	AppName   string `mapstructure:"APP_NAME"`
}

// Load lee config.yml (si existe) y variables de entorno.
// API_HOST no tiene default: sin host, BaseURL() queda vacío y el
// gateway corta con ErrNotConfigured antes de tocar la red.
func Load() (Config, error) {
	v := viper.New()

	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		// sin archivo: solo env + defaults
	}

	v.SetDefault("API_PORT", 8000)
	v.SetDefault("HTTP_TIMEOUT_SECONDS", 15)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("APP_NAME", "furever")

	// AutomaticEnv no alcanza a Unmarshal para keys sin default;
	// registrar explícito las que no tienen.
	_ = v.BindEnv("API_HOST")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.APIHost = strings.TrimSpace(cfg.APIHost)
	return cfg, nil
}

// BaseURL arma http://host:port. Vacío si no hay host configurado.
func (c Config) BaseURL() string {
	if c.APIHost == "" {
		return ""
	}
	port := c.APIPort
	if port <= 0 {
		port = 8000
	}
	return fmt.Sprintf("http://%s:%d", c.APIHost, port)
}

func (c Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTPConfig
	Mongo    MongoConfig
	Mail     MailConfig
	CORS     CORSConfig
	LogLevel string
}

type HTTPConfig struct {
	Address         string
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URL      string
	Database string
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type CORSConfig struct {
	Origins []string
}

// LoadConfig reads configuration from the environment. MONGO_URL and
// DB_NAME have no sensible defaults and must be set; everything else
// falls back to the values below.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDRESS", ":8001")
	v.SetDefault("SHUTDOWN_TIMEOUT", "5s")
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 465)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MONGO_URL", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("GMAIL_USER", "")
	v.SetDefault("GMAIL_APP_PASSWORD", "")

	cfg := &Config{
		HTTP: HTTPConfig{
			Address:         v.GetString("HTTP_ADDRESS"),
			ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		},
		Mongo: MongoConfig{
			URL:      v.GetString("MONGO_URL"),
			Database: v.GetString("DB_NAME"),
		},
		Mail: MailConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("GMAIL_USER"),
			Password: v.GetString("GMAIL_APP_PASSWORD"),
		},
		CORS: CORSConfig{
			Origins: splitOrigins(v.GetString("CORS_ORIGINS")),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if cfg.Mongo.URL == "" {
		return nil, errors.New("MONGO_URL is not set")
	}
	if cfg.Mongo.Database == "" {
		return nil, errors.New("DB_NAME is not set")
	}
	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

package config

import (
	"os"
	"strconv"
	"strings"

	"edd-calculator/internal/platform/logger"
)

const (
	DefaultPort         = "8080"
	DefaultHistoryLimit = 50
	DefaultAppName      = "edd-calculator"
)

// Config se arma desde env; el CLI puede pisar valores con flags.
//
//   - PORT=8080
//   - DB_DSN=postgres://... (opcional, si falta se usa memoria)
//   - AUTH_VERIFY_URL=https://... (opcional, si falta modo dev con X-Debug-User-ID)
//   - LOG_LEVEL=debug|info|warn|error, LOG_FORMAT=text|json, APP_NAME
//   - HISTORY_LIMIT=50
type Config struct {
	Port          string
	DBDSN         string
	AuthVerifyURL string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	HistoryLimit int
}

func FromEnv() Config {
	return fromLookup(os.Getenv)
}

func fromLookup(get func(string) string) Config {
	c := Config{
		Port:          strings.TrimSpace(get("PORT")),
		DBDSN:         strings.TrimSpace(get("DB_DSN")),
		AuthVerifyURL: strings.TrimSpace(get("AUTH_VERIFY_URL")),
		LogLevel:      logger.ParseLevel(get("LOG_LEVEL")),
		LogFormat:     logger.ParseFormat(get("LOG_FORMAT")),
		AppName:       strings.TrimSpace(get("APP_NAME")),
		HistoryLimit:  DefaultHistoryLimit,
	}
	if c.Port == "" {
		c.Port = DefaultPort
	}
	if c.AppName == "" {
		c.AppName = DefaultAppName
	}
	if v := strings.TrimSpace(get("HISTORY_LIMIT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.HistoryLimit = n
		}
	}
	return c
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c Config) Logger() logger.Logger {
	return logger.New(logger.Options{
		Level:  c.LogLevel,
		Format: c.LogFormat,
		App:    c.AppName,
	})
}

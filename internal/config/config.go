package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	ethNodeEnvKey   = "ETH_NODE_URL"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"
	logLevelEnvKey  = "LOG_LEVEL"
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	LogLevel        zapcore.Level
}

// NewApp loads the ledger service configuration from the environment.
// LOG_LEVEL is optional and defaults to info.
func NewApp() (App, error) {
	var app App

	required := []struct {
		key string
		dst *string
	}{
		{apiPortEnvKey, &app.Port},
		{ethNodeEnvKey, &app.NodeURL},
		{dbConnEnvKey, &app.DBConnectionURL},
		{jwtSecretEnvKey, &app.JWTSecret},
	}
	for _, r := range required {
		v, ok := os.LookupEnv(r.key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, r.key)
		}
		*r.dst = v
	}

	app.LogLevel = zapcore.InfoLevel
	if lvl, ok := os.LookupEnv(logLevelEnvKey); ok {
		parsed, err := zapcore.ParseLevel(lvl)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", logLevelEnvKey, err)
		}
		app.LogLevel = parsed
	}

	return app, nil
}

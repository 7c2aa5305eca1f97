package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Infof("env var %s empty, using default %q", env, def)
		return def
	}
	return value
}

// Must return the result of searching an env var, if the env var value is empty, stops the application
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Fatalf("missing required env var %s", env)
	}
	return value
}

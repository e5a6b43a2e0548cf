package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	portEnvVar         = "PORT"
	appNameVar         = "APP_NAME"
	envVar             = "ENV"
	logLevelVar        = "LOG_LEVEL"
	maxBodyBytesEnvVar = "MAX_BODY_BYTES"

	// Broadcast images travel as data URLs inside the JSON body.
	defaultMaxBodyBytes = 12 << 20
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Bot Admin")
}

func (EnvVars) GetEnv() string {
	return strings.ToUpper(GetEnv(envVar, "DEV"))
}

// IsProduction reports whether cookies must be marked Secure.
func (e EnvVars) IsProduction() bool {
	env := e.GetEnv()
	return env == "PROD" || env == "PRODUCTION"
}

func (EnvVars) GetLogLevel() string {
	return GetEnv(logLevelVar, "info")
}

func (EnvVars) GetMaxBodyBytes() int64 {
	return GetEnvAsInt64(maxBodyBytesEnvVar, defaultMaxBodyBytes)
}

func GetEnv(envVar, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(envVar))
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(envVar string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(GetEnv(envVar, ""), 10, 64)
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

package config

import (
	"strings"
	"time"
)

const (
	botAPIURLVar     = "BOT_API_URL"
	botAPITimeoutVar = "BOT_API_TIMEOUT"

	defaultBotAPIURL = "http://localhost:4000"
)

type BotAPI struct{}

var _ BotAPIConfig = BotAPI{}

// GetBotAPIURL returns the backend base URL without trailing slashes.
func (BotAPI) GetBotAPIURL() string {
	baseURL := strings.TrimRight(GetEnv(botAPIURLVar, defaultBotAPIURL), "/")
	if baseURL == "" {
		return defaultBotAPIURL
	}
	return baseURL
}

func (BotAPI) GetBotAPITimeout() time.Duration {
	timeout, err := time.ParseDuration(GetEnv(botAPITimeoutVar, "30s"))
	if err != nil || timeout < 0 {
		return 30 * time.Second
	}
	return timeout
}

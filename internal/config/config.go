package config

import "time"

type Config interface {
	EnvConfig
	SessionConfig
	BotAPIConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	IsProduction() bool
	GetLogLevel() string
	GetMaxBodyBytes() int64
}

type SessionConfig interface {
	GetAccessCookieName() string
	GetRefreshCookieName() string
	GetAccessTokenMaxAge() time.Duration
	GetRefreshTokenMaxAge() time.Duration
}

type BotAPIConfig interface {
	GetBotAPIURL() string
	GetBotAPITimeout() time.Duration
}

type mainConfig struct {
	EnvVars
	Session
	BotAPI
}

func New() Config {
	return mainConfig{}
}

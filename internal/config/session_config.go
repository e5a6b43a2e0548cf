package config

import "time"

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetAccessCookieName() string {
	return "admin_access_token"
}

func (Session) GetRefreshCookieName() string {
	return "admin_refresh_token"
}

func (Session) GetAccessTokenMaxAge() time.Duration {
	return 15 * time.Minute
}

func (Session) GetRefreshTokenMaxAge() time.Duration {
	return 7 * 24 * time.Hour // 7 days
}

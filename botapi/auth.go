package botapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-bot-admin/internal/errors"
	"github.com/jrsteele09/go-bot-admin/session"
)

// AuthSession is the body returned by login and refresh.
type AuthSession struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	Admin        json.RawMessage `json:"admin,omitempty"`
}

func (a AuthSession) Tokens() session.Tokens {
	return session.Tokens{AccessToken: a.AccessToken, RefreshToken: a.RefreshToken}
}

// Profile decodes the admin record, returning the zero profile when it is absent or malformed.
func (a AuthSession) Profile() AdminProfile {
	var profile AdminProfile
	if len(a.Admin) > 0 {
		_ = json.Unmarshal(a.Admin, &profile)
	}
	return profile
}

// DecodeAuthSession extracts the token pair from a login or refresh payload.
// A payload without both tokens yields ErrIncompleteTokens.
func DecodeAuthSession(payload json.RawMessage) (AuthSession, error) {
	var auth AuthSession
	if err := json.Unmarshal(payload, &auth); err != nil {
		return AuthSession{}, errors.Wrapf(errors.ErrIncompleteTokens, "[botapi DecodeAuthSession] %v", err)
	}
	if !auth.Tokens().Complete() {
		return AuthSession{}, errors.Wrapf(errors.ErrIncompleteTokens, "[botapi DecodeAuthSession]")
	}
	return auth, nil
}

// Login posts the credentials body unchanged.
func (c *Client) Login(ctx context.Context, body []byte) (Response, error) {
	return c.Send(ctx, PathLogin, RequestOptions{Method: http.MethodPost, Body: body})
}

// Refresh exchanges a refresh token for a new pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Response, error) {
	body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return Response{}, errors.Wrapf(err, "[botapi Refresh] encode")
	}
	return c.Send(ctx, PathRefresh, RequestOptions{Method: http.MethodPost, Body: body})
}

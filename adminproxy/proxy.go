package adminproxy

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-bot-admin/botapi"
	"github.com/jrsteele09/go-bot-admin/internal/errors"
	"github.com/jrsteele09/go-bot-admin/session"
	"github.com/rs/zerolog"
)

const unauthorizedMessage = "Unauthorized"

// TokenStore is the cookie-backed credential storage the proxy reads and rotates.
type TokenStore interface {
	Read(r *http.Request) session.Tokens
	Set(w http.ResponseWriter, tokens session.Tokens) error
	Clear(w http.ResponseWriter)
}

// Call is one logical backend request. Body is kept as bytes so the call can
// be reissued after a refresh.
type Call struct {
	Method string
	Path   string
	Body   []byte
	Header http.Header
}

// Proxy makes authenticated calls on behalf of the browser session held in
// the request cookies, refreshing and retrying at most once on expiry.
type Proxy struct {
	client *botapi.Client
	store  TokenStore
}

func New(client *botapi.Client, store TokenStore) *Proxy {
	return &Proxy{client: client, store: store}
}

// Unauthorized is the response produced when no usable session exists.
func Unauthorized() botapi.Response {
	return botapi.Response{StatusCode: http.StatusUnauthorized, Payload: botapi.MessagePayload(unauthorizedMessage)}
}

// Do performs call with the session from r, writing any cookie rotation or
// invalidation to w. The returned response is the backend's, unchanged, or a
// local 401 when the session is absent or cannot be refreshed. Errors are
// transport failures only.
//
// At most one refresh happens before the first attempt (when only a refresh
// token is stored) and at most one refresh-and-retry after a backend 401.
func (p *Proxy) Do(w http.ResponseWriter, r *http.Request, call Call) (botapi.Response, error) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx).With().Str("method", call.Method).Str("path", call.Path).Logger()

	tokens := p.store.Read(r)
	if !tokens.Present() {
		return Unauthorized(), nil
	}

	if tokens.AccessToken == "" {
		logger.Debug().Msg("access token missing, refreshing before call")
		rotated, err := p.rotate(ctx, w, tokens.RefreshToken)
		if err != nil {
			return p.abandon(w, logger, err)
		}
		tokens = rotated
	}

	res, err := p.send(ctx, call, tokens)
	if err != nil {
		return botapi.Response{}, err
	}

	if res.StatusCode == http.StatusUnauthorized && tokens.RefreshToken != "" {
		logger.Debug().Msg("access token rejected, refreshing and retrying once")
		rotated, err := p.rotate(ctx, w, tokens.RefreshToken)
		if err != nil {
			return p.abandon(w, logger, err)
		}
		tokens = rotated

		res, err = p.send(ctx, call, tokens)
		if err != nil {
			return botapi.Response{}, err
		}
	}

	if res.StatusCode == http.StatusUnauthorized {
		logger.Info().Msg("backend rejected session, clearing cookies")
		p.store.Clear(w)
	}
	return res, nil
}

// Rotate exchanges the stored refresh token for a new pair without making any
// other call. It returns the refresh payload on success.
func (p *Proxy) Rotate(w http.ResponseWriter, r *http.Request) (botapi.Response, error) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	tokens := p.store.Read(r)
	if tokens.RefreshToken == "" {
		if tokens.Present() {
			p.store.Clear(w)
		}
		return Unauthorized(), nil
	}

	res, err := p.client.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		return botapi.Response{}, err
	}
	if !res.OK() {
		logger.Info().Int("status", res.StatusCode).Msg("refresh rejected, clearing cookies")
		p.store.Clear(w)
		return Unauthorized(), nil
	}

	auth, err := botapi.DecodeAuthSession(res.Payload)
	if err != nil {
		logger.Warn().Err(err).Msg("refresh returned no usable tokens, clearing cookies")
		p.store.Clear(w)
		return Unauthorized(), nil
	}
	if err := p.store.Set(w, auth.Tokens()); err != nil {
		return botapi.Response{}, err
	}
	return res, nil
}

func (p *Proxy) send(ctx context.Context, call Call, tokens session.Tokens) (botapi.Response, error) {
	return p.client.Send(ctx, call.Path, botapi.RequestOptions{
		Method: call.Method,
		Body:   call.Body,
		Header: call.Header,
		Token:  tokens.Bearer(),
	})
}

// rotate refreshes and persists the new pair before returning it, so a retry
// is only ever issued against tokens already written to the response.
func (p *Proxy) rotate(ctx context.Context, w http.ResponseWriter, refreshToken string) (session.Tokens, error) {
	res, err := p.client.Refresh(ctx, refreshToken)
	if err != nil {
		return session.Tokens{}, err
	}
	if !res.OK() {
		return session.Tokens{}, errors.Wrapf(errors.ErrRefreshRejected, "[adminproxy rotate] status %d", res.StatusCode)
	}

	auth, err := botapi.DecodeAuthSession(res.Payload)
	if err != nil {
		return session.Tokens{}, errors.Wrapf(errors.ErrRefreshRejected, "[adminproxy rotate] %v", err)
	}

	tokens := auth.Tokens()
	if err := p.store.Set(w, tokens); err != nil {
		return session.Tokens{}, errors.Wrapf(err, "[adminproxy rotate] persist")
	}
	zerolog.Ctx(ctx).Info().Msg("session tokens rotated")
	return tokens, nil
}

// abandon ends the call after a failed refresh. A rejected refresh clears the
// session and answers 401; transport failures propagate.
func (p *Proxy) abandon(w http.ResponseWriter, logger zerolog.Logger, err error) (botapi.Response, error) {
	if !errors.Is(err, errors.ErrRefreshRejected) {
		return botapi.Response{}, err
	}
	logger.Info().Err(err).Msg("refresh failed, clearing cookies")
	p.store.Clear(w)
	return Unauthorized(), nil
}

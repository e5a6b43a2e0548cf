package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-bot-admin/internal/config"
	"github.com/jrsteele09/go-bot-admin/internal/errors"
	"github.com/jrsteele09/go-bot-admin/session"
	"github.com/stretchr/testify/require"
)

const (
	accessCookie  = "admin_access_token"
	refreshCookie = "admin_refresh_token"
)

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestCookieStore_Read(t *testing.T) {
	store := session.NewCookieStore(config.New(), false)

	t.Run("no cookies", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.Equal(t, session.Tokens{}, store.Read(r))
		require.False(t, store.HasSession(r))
	})

	t.Run("refresh only still counts as a session", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: refreshCookie, Value: "R1"})
		require.Equal(t, session.Tokens{RefreshToken: "R1"}, store.Read(r))
		require.True(t, store.HasSession(r))
	})

	t.Run("both tokens", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: accessCookie, Value: "A1"})
		r.AddCookie(&http.Cookie{Name: refreshCookie, Value: "R1"})
		tokens := store.Read(r)
		require.True(t, tokens.Complete())
		require.Equal(t, "A1", tokens.Bearer().AccessToken)
	})
}

func TestCookieStore_Set(t *testing.T) {
	t.Run("writes the pair with expiry windows", func(t *testing.T) {
		store := session.NewCookieStore(config.New(), false)
		rec := httptest.NewRecorder()
		require.NoError(t, store.Set(rec, session.Tokens{AccessToken: "A1", RefreshToken: "R1"}))

		cookies := cookiesByName(rec)
		require.Len(t, cookies, 2)

		access := cookies[accessCookie]
		require.Equal(t, "A1", access.Value)
		require.Equal(t, 900, access.MaxAge)
		require.True(t, access.HttpOnly)
		require.False(t, access.Secure)
		require.Equal(t, http.SameSiteLaxMode, access.SameSite)
		require.Equal(t, "/", access.Path)

		refresh := cookies[refreshCookie]
		require.Equal(t, "R1", refresh.Value)
		require.Equal(t, 604800, refresh.MaxAge)
		require.True(t, refresh.HttpOnly)
	})

	t.Run("secure in production", func(t *testing.T) {
		store := session.NewCookieStore(config.New(), true)
		rec := httptest.NewRecorder()
		require.NoError(t, store.Set(rec, session.Tokens{AccessToken: "A1", RefreshToken: "R1"}))
		for _, c := range rec.Result().Cookies() {
			require.True(t, c.Secure, c.Name)
		}
	})

	t.Run("half pair rejected", func(t *testing.T) {
		store := session.NewCookieStore(config.New(), false)
		rec := httptest.NewRecorder()
		err := store.Set(rec, session.Tokens{AccessToken: "A1"})
		require.True(t, errors.Is(err, errors.ErrIncompleteTokens))
		require.Empty(t, rec.Result().Cookies())
	})

	t.Run("second write replaces the first", func(t *testing.T) {
		store := session.NewCookieStore(config.New(), false)
		rec := httptest.NewRecorder()
		require.NoError(t, store.Set(rec, session.Tokens{AccessToken: "A1", RefreshToken: "R1"}))
		require.NoError(t, store.Set(rec, session.Tokens{AccessToken: "A2", RefreshToken: "R2"}))

		require.Len(t, rec.Result().Cookies(), 2)
		cookies := cookiesByName(rec)
		require.Equal(t, "A2", cookies[accessCookie].Value)
		require.Equal(t, "R2", cookies[refreshCookie].Value)
	})
}

func TestCookieStore_Clear(t *testing.T) {
	store := session.NewCookieStore(config.New(), false)
	rec := httptest.NewRecorder()
	rec.Header().Add("Set-Cookie", "other=keep; Path=/")
	require.NoError(t, store.Set(rec, session.Tokens{AccessToken: "A1", RefreshToken: "R1"}))
	store.Clear(rec)

	cookies := cookiesByName(rec)
	require.Len(t, cookies, 3)
	require.Equal(t, "keep", cookies["other"].Value)
	for _, name := range []string{accessCookie, refreshCookie} {
		c := cookies[name]
		require.Empty(t, c.Value)
		require.Equal(t, -1, c.MaxAge)
		require.Equal(t, int64(0), c.Expires.Unix())
	}
}

func TestTokens_Bearer(t *testing.T) {
	require.Nil(t, session.Tokens{RefreshToken: "R1"}.Bearer())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	session.Tokens{AccessToken: "A1"}.Bearer().SetAuthHeader(req)
	require.Equal(t, "Bearer A1", req.Header.Get("Authorization"))
}

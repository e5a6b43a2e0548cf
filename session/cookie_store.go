package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-bot-admin/internal/config"
	"github.com/jrsteele09/go-bot-admin/internal/errors"
)

// CookieStore keeps the token pair in two HTTP-only cookies scoped to the
// whole application. The pair is always written or cleared together.
type CookieStore struct {
	accessName    string
	refreshName   string
	accessMaxAge  time.Duration
	refreshMaxAge time.Duration
	secure        bool
}

// NewCookieStore creates a store. secure marks the cookies Secure and should be
// set in production.
func NewCookieStore(cfg config.SessionConfig, secure bool) *CookieStore {
	return &CookieStore{
		accessName:    cfg.GetAccessCookieName(),
		refreshName:   cfg.GetRefreshCookieName(),
		accessMaxAge:  cfg.GetAccessTokenMaxAge(),
		refreshMaxAge: cfg.GetRefreshTokenMaxAge(),
		secure:        secure,
	}
}

// Read returns the tokens carried by the inbound request. A missing cookie
// reads as an empty token.
func (s *CookieStore) Read(r *http.Request) Tokens {
	return Tokens{
		AccessToken:  cookieValue(r, s.accessName),
		RefreshToken: cookieValue(r, s.refreshName),
	}
}

// HasSession reports whether the request carries either token. It only gates
// the login redirect and is not an authorization decision.
func (s *CookieStore) HasSession(r *http.Request) bool {
	return s.Read(r).Present()
}

// Set writes both tokens to the response. A half-empty pair is rejected so the
// cookies can never disagree.
func (s *CookieStore) Set(w http.ResponseWriter, tokens Tokens) error {
	if !tokens.Complete() {
		return errors.Wrapf(errors.ErrIncompleteTokens, "[CookieStore Set]")
	}
	s.write(w, s.cookie(s.accessName, tokens.AccessToken, s.accessMaxAge))
	s.write(w, s.cookie(s.refreshName, tokens.RefreshToken, s.refreshMaxAge))
	return nil
}

// Clear overwrites both cookies with empty, already expired values.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	for _, name := range []string{s.accessName, s.refreshName} {
		c := s.cookie(name, "", 0)
		c.MaxAge = -1
		c.Expires = time.Unix(0, 0)
		s.write(w, c)
	}
}

func (s *CookieStore) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(maxAge / time.Second),
	}
}

// write replaces any Set-Cookie for the same name already queued on this
// response, so a request that rotates and then clears emits only the final state.
func (s *CookieStore) write(w http.ResponseWriter, c *http.Cookie) {
	header := w.Header()
	prefix := c.Name + "="
	var kept []string
	for _, line := range header.Values("Set-Cookie") {
		if !strings.HasPrefix(line, prefix) {
			kept = append(kept, line)
		}
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}
	http.SetCookie(w, c)
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

package server

import (
	"net/http"

	"github.com/jrsteele09/go-bot-admin/adminproxy"
	"github.com/jrsteele09/go-bot-admin/botapi"
	"github.com/rs/zerolog"
)

// LoginHandler exchanges credentials for a session. The token pair is only
// ever written to cookies; the browser receives the admin profile.
func (s *Server) LoginHandler() http.HandlerFunc {
	rule := s.loginRule()

	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())

		body, err := s.readBody(w, r, rule)
		if err != nil {
			writeRequestError(w, err)
			return
		}

		res, err := s.bot.Login(r.Context(), body)
		if err != nil {
			backendUnavailable(w, r, err)
			return
		}
		if !res.OK() {
			if res.StatusCode == http.StatusUnauthorized {
				s.sessions.Clear(w)
			}
			writeJSON(w, res.StatusCode, res.Payload)
			return
		}

		auth, err := botapi.DecodeAuthSession(res.Payload)
		if err != nil {
			logger.Warn().Err(err).Msg("Login: Bot API returned no usable tokens")
			writeMessage(w, http.StatusBadGateway, msgIncompleteSession)
			return
		}
		if err := s.sessions.Set(w, auth.Tokens()); err != nil {
			logger.Err(err).Msg("Login: failed to store session")
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		profile := auth.Profile()
		logger.Info().Str("admin", profile.Username).Str("role", string(profile.Role)).Msg("Admin logged in")
		writeValue(w, http.StatusOK, adminPayload(auth.Admin))
	}
}

// LogoutHandler tells the Bot API to end the session when one is present and
// always clears the cookies. Backend failures do not block the logout.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())

		if s.sessions.HasSession(r) {
			res, err := s.proxy.Do(w, r, adminproxy.Call{Method: http.MethodPost, Path: botapi.PathLogout})
			switch {
			case err != nil:
				logger.Warn().Err(err).Msg("Logout: Bot API unreachable, clearing session locally")
			case !res.OK():
				logger.Info().Int("status", res.StatusCode).Msg("Logout: Bot API refused, clearing session locally")
			}
		}

		s.sessions.Clear(w)
		writeValue(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// RefreshHandler rotates the token pair on demand.
func (s *Server) RefreshHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := s.proxy.Rotate(w, r)
		if err != nil || !res.OK() {
			relay(w, r, res, err)
			return
		}

		auth, err := botapi.DecodeAuthSession(res.Payload)
		if err != nil {
			// Rotate only reports success for complete payloads.
			writeMessage(w, http.StatusBadGateway, msgIncompleteSession)
			return
		}
		writeValue(w, http.StatusOK, adminPayload(auth.Admin))
	}
}

// SessionStatusHandler reports whether session cookies are present. It does
// not contact the Bot API.
func (s *Server) SessionStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeValue(w, http.StatusOK, map[string]bool{"authenticated": s.sessions.HasSession(r)})
	}
}

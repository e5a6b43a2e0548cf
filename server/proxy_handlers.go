package server

import (
	"net/http"

	"github.com/jrsteele09/go-bot-admin/adminproxy"
)

// ProxyHandler relays one protected Bot API endpoint. When rule is non-nil the
// inbound body is required to be valid JSON passing rule; it is then forwarded
// byte for byte. The backend status and payload are returned unchanged.
func (s *Server) ProxyHandler(method string, target targetFunc, rule bodyRule) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path, err := target(r)
		if err != nil {
			writeRequestError(w, err)
			return
		}

		var body []byte
		if rule != nil {
			if body, err = s.readBody(w, r, rule); err != nil {
				writeRequestError(w, err)
				return
			}
		}

		res, err := s.proxy.Do(w, r, adminproxy.Call{Method: method, Path: path, Body: body})
		relay(w, r, res, err)
	}
}

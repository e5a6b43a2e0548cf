package server

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
)

const contentTypeHTML = "text/html; charset=utf-8"

// PageData is shared by the page shells.
type PageData struct {
	AppName          string
	LoginPage        string
	LoginAPI         string
	LogoutAPI        string
	OverviewAPI      string
	UsersAPI         string
	PresentationsAPI string
}

func (s *Server) pageData() PageData {
	return PageData{
		AppName:          s.config.GetAppName(),
		LoginPage:        RouteLogin,
		LoginAPI:         RouteAPILogin,
		LogoutAPI:        RouteAPILogout,
		OverviewAPI:      RouteAPIOverview,
		UsersAPI:         RouteAPIUsers,
		PresentationsAPI: RouteAPIPresentations,
	}
}

// DashboardPageHandler serves the dashboard shell, sending visitors without a
// session to the login page. Data is loaded by the page through /api.
func (s *Server) DashboardPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.sessions.HasSession(r) {
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
			return
		}
		s.renderPage(w, r, s.dashboardPage)
	}
}

// LoginPageHandler serves the login shell, or the dashboard when a session exists.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.sessions.HasSession(r) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.renderPage(w, r, s.loginPage)
	}
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.Header().Set("Cache-Control", "no-store")
	if err := tmpl.Execute(w, s.pageData()); err != nil {
		zerolog.Ctx(r.Context()).Err(err).Str("template", tmpl.Name()).Msg("Failed to render page")
	}
}

func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []byte(`{"status":"ok"}`))
	}
}

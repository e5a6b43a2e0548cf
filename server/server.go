package server

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/go-bot-admin/adminproxy"
	"github.com/jrsteele09/go-bot-admin/botapi"
	"github.com/jrsteele09/go-bot-admin/internal/config"
	"github.com/jrsteele09/go-bot-admin/session"
)

// Server is the browser-facing side of the admin console. It serves the page
// shells and relays /api calls to the Bot API with the cookie session attached.
type Server struct {
	env      string // Environment (e.g., "DEV", "PROD")
	mux      *http.ServeMux
	routes   []string
	config   config.Config
	bot      *botapi.Client
	sessions *session.CookieStore
	proxy    *adminproxy.Proxy
	validate *validator.Validate

	loginPage     *template.Template
	dashboardPage *template.Template
}

func New(cfg config.Config) (*Server, error) {
	bot := botapi.New(cfg)
	sessions := session.NewCookieStore(cfg, cfg.IsProduction())

	validate, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create validator: %w", err)
	}

	s := &Server{
		env:      cfg.GetEnv(),
		mux:      http.NewServeMux(),
		config:   cfg,
		bot:      bot,
		sessions: sessions,
		proxy:    adminproxy.New(bot, sessions),
		validate: validate,
	}

	if s.loginPage, err = ParseTemplate("login.html"); err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse login template: %w", err)
	}
	if s.dashboardPage, err = ParseTemplate("dashboard.html"); err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse dashboard template: %w", err)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// Routes returns the registered patterns in registration order.
func (s *Server) Routes() []string {
	return append([]string(nil), s.routes...)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

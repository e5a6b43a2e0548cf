package server

import (
	"net/http"

	"github.com/jrsteele09/go-bot-admin/botapi"
)

func (s *Server) initRoutes() {
	// PAGES
	s.RegisterRouteHandler("GET "+RouteIndex, ChainMiddleware(s.DashboardPageHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleWare()...))

	// AUTH
	s.RegisterRouteHandler("POST "+RouteAPILogin, ChainMiddleware(s.LoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPILogout, ChainMiddleware(s.LogoutHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIRefresh, ChainMiddleware(s.RefreshHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPISession, ChainMiddleware(s.SessionStatusHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIMe, ChainMiddleware(s.ProxyHandler(http.MethodGet, fixedPath(botapi.PathMe), nil), s.APIMiddleware()...))

	// ADMIN ACCOUNTS
	s.RegisterRouteHandler("GET "+RouteAPIAdmins, ChainMiddleware(s.ProxyHandler(http.MethodGet, fixedPath(botapi.PathAdmins), nil), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIAdmins, ChainMiddleware(s.ProxyHandler(http.MethodPost, fixedPath(botapi.PathAdmins), s.createAdminRule()), s.APIMiddleware()...))
	s.RegisterRouteHandler("PATCH "+RouteAPIAdmin, ChainMiddleware(s.ProxyHandler(http.MethodPatch, idPath(botapi.AdminPath), s.updateAdminRule()), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAPIAdmin, ChainMiddleware(s.ProxyHandler(http.MethodDelete, idPath(botapi.AdminPath), nil), s.APIMiddleware()...))

	// DASHBOARD DATA
	s.RegisterRouteHandler("GET "+RouteAPIOverview, ChainMiddleware(s.ProxyHandler(http.MethodGet, fixedPath(botapi.PathOverview), nil), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIUsers, ChainMiddleware(s.ProxyHandler(http.MethodGet, fixedPath(botapi.PathUsers), nil), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIPresentations, ChainMiddleware(s.ProxyHandler(http.MethodGet, presentationsPath, nil), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIFailPresentation, ChainMiddleware(s.ProxyHandler(http.MethodPost, idPath(botapi.FailPresentationPath), nil), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIBroadcast, ChainMiddleware(s.ProxyHandler(http.MethodPost, fixedPath(botapi.PathBroadcast), s.broadcastRule()), s.APIMiddleware()...))

	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())
}

package server

// Route path constants
// All browser-facing routes are defined here to ensure consistency and prevent typos
const (
	// Pages
	RouteIndex = "/{$}"
	RouteLogin = "/login"

	// Auth API
	RouteAPILogin   = "/api/auth/login"
	RouteAPILogout  = "/api/auth/logout"
	RouteAPIRefresh = "/api/auth/refresh"
	RouteAPIMe      = "/api/auth/me"
	RouteAPISession = "/api/auth/session"

	// Admin accounts (SUPERADMIN only, enforced by the Bot API)
	RouteAPIAdmins = "/api/admins"
	RouteAPIAdmin  = "/api/admins/{id}"

	// Dashboard data
	RouteAPIOverview         = "/api/overview"
	RouteAPIUsers            = "/api/users"
	RouteAPIPresentations    = "/api/presentations"
	RouteAPIFailPresentation = "/api/presentations/{id}/fail"
	RouteAPIBroadcast        = "/api/broadcast"

	RouteHealth = "/healthz"
)

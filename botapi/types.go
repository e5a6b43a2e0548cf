package botapi

import (
	"net/url"
	"time"
)

// Bot API paths.
const (
	PathLogin         = "/admin/auth/login"
	PathRefresh       = "/admin/auth/refresh"
	PathMe            = "/admin/auth/me"
	PathLogout        = "/admin/auth/logout"
	PathAdmins        = "/admin/admins"
	PathOverview      = "/admin/overview"
	PathUsers         = "/admin/users"
	PathPresentations = "/admin/presentations"
	PathBroadcast     = "/admin/broadcast"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

// AdminProfile mirrors the backend's admin record. It is only held for the
// duration of a request.
type AdminProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PresentationStatus string

const (
	PresentationPending   PresentationStatus = "pending"
	PresentationCompleted PresentationStatus = "completed"
	PresentationFailed    PresentationStatus = "failed"
)

// AdminPath returns the path of one admin account.
func AdminPath(id string) string {
	return PathAdmins + "/" + escapeSegment(id)
}

// FailPresentationPath returns the path that force-fails a pending job.
func FailPresentationPath(id string) string {
	return PathPresentations + "/" + escapeSegment(id) + "/fail"
}

func escapeSegment(s string) string {
	return url.PathEscape(s)
}

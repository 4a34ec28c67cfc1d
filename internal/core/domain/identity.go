package domain

import "time"

// Role is the closed set of account roles in the marketplace.
type Role string

const (
	RoleJobseeker  Role = "jobseeker"
	RoleRecruiter  Role = "recruiter"
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
	RoleCollege    Role = "college"
	RoleStudent    Role = "student"
	RoleStartup    Role = "startup"
	RoleAdmin      Role = "admin"
)

// AllRoles lists every valid role. Dispatch tables below must cover all of them.
var AllRoles = []Role{
	RoleJobseeker,
	RoleRecruiter,
	RoleFreelancer,
	RoleClient,
	RoleCollege,
	RoleStudent,
	RoleStartup,
	RoleAdmin,
}

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// dashboardRoutes is the canonical role → dashboard path table.
var dashboardRoutes = map[Role]string{
	RoleJobseeker:  "/jobseeker/dashboard",
	RoleRecruiter:  "/recruiter/dashboard",
	RoleFreelancer: "/freelancer/dashboard",
	RoleClient:     "/client/dashboard",
	RoleCollege:    "/college/dashboard",
	RoleStudent:    "/student/dashboard",
	RoleStartup:    "/startup/dashboard",
	RoleAdmin:      "/admin/dashboard",
}

// RecruiterHRMSRoute is the recruiter operational surface. Post-login dispatch
// always lands recruiters here, regardless of the generic dashboard table.
const RecruiterHRMSRoute = "/recruiter/hrms"

// HomeRoute is the neutral fallback for unrecognised roles and wrong-role redirects.
const HomeRoute = "/"

// DashboardRoute returns the dashboard path for a role. Total: any value
// outside the known set falls back to HomeRoute.
func DashboardRoute(role Role) string {
	if path, ok := dashboardRoutes[role]; ok {
		return path
	}
	return HomeRoute
}

// LandingRoute resolves the one-shot post-authentication landing path.
// Recruiters always land on the HRMS surface; every other role follows the
// generic dashboard table.
func LandingRoute(identity *Identity) string {
	if identity == nil {
		return HomeRoute
	}
	if identity.Role == RoleRecruiter {
		return RecruiterHRMSRoute
	}
	return DashboardRoute(identity.Role)
}

// Identity is the signed-in principal held for the duration of a session.
// DashboardID is populated only for recruiter accounts.
type Identity struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Role            Role      `json:"role"`
	Token           string    `json:"token"`
	DashboardID     string    `json:"dashboard_id,omitempty"`
	ProfileComplete bool      `json:"profile_complete"`
	Phone           string    `json:"phone,omitempty"`
	Location        string    `json:"location,omitempty"`
	Company         string    `json:"company,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProfileUpdate carries a partial profile change. Nil fields are left untouched
// by Apply.
type ProfileUpdate struct {
	FullName        *string `json:"full_name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Location        *string `json:"location,omitempty"`
	Company         *string `json:"company,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	ProfileComplete *bool   `json:"profile_complete,omitempty"`
}

// Apply merges the update into a copy of the identity and returns it. The
// receiver's identity is never mutated, so callers can swap state atomically.
func (u ProfileUpdate) Apply(identity Identity) Identity {
	if u.FullName != nil {
		identity.FullName = *u.FullName
	}
	if u.Phone != nil {
		identity.Phone = *u.Phone
	}
	if u.Location != nil {
		identity.Location = *u.Location
	}
	if u.Company != nil {
		identity.Company = *u.Company
	}
	if u.Bio != nil {
		identity.Bio = *u.Bio
	}
	if u.AvatarURL != nil {
		identity.AvatarURL = *u.AvatarURL
	}
	if u.ProfileComplete != nil {
		identity.ProfileComplete = *u.ProfileComplete
	}
	return identity
}

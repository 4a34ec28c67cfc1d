package handler

import "github.com/careerbridge/identity-system/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role"      validate:"required"`
}

type demoLoginRequest struct {
	Role string `json:"role" validate:"required"`
}

type profileUpdateRequest struct {
	FullName        *string `json:"full_name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Location        *string `json:"location,omitempty"`
	Company         *string `json:"company,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	AvatarURL       *string `json:"avatar_url,omitempty"`
	ProfileComplete *bool   `json:"profile_complete,omitempty"`
}

func (r profileUpdateRequest) toUpdate() domain.ProfileUpdate {
	return domain.ProfileUpdate{
		FullName:        r.FullName,
		Phone:           r.Phone,
		Location:        r.Location,
		Company:         r.Company,
		Bio:             r.Bio,
		AvatarURL:       r.AvatarURL,
		ProfileComplete: r.ProfileComplete,
	}
}

type switchRoleRequest struct {
	Facet string `json:"facet" validate:"required,oneof=startup recruiter"`
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	User       *domain.Identity `json:"user"`
	RedirectTo string           `json:"redirect_to"`
}

type sessionResponse struct {
	User          *domain.Identity `json:"user"`
	Authenticated bool             `json:"authenticated"`
	Loading       bool             `json:"loading"`
}

type facetResponse struct {
	Facet domain.Facet `json:"facet"`
}

type adminSessionResponse struct {
	Admin         *domain.AdminIdentity `json:"admin"`
	Authenticated bool                  `json:"authenticated"`
}

type messageResponse struct {
	Message string `json:"message"`
}

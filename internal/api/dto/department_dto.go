package dto

import (
	"time"

	"github.com/spec-kit/department-store/internal/domain"
)

// DepartmentRequest payload for create and update. Omitted fields stay unchanged on update.
type DepartmentRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// DepartmentResponse representation.
type DepartmentResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// NewDepartmentResponse maps a domain record to its wire form.
func NewDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name, Location: d.Location}
}

// LoginRequest payload for admin login.
type LoginRequest struct {
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

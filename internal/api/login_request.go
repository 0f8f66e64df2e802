// File: internal/api/login_request.go
package api

import "strings"

type LoginRequest struct {
	Email    string `json:"email" validate:"email" example:"alice@example.com"`
	Password string `json:"password" validate:"min=6" example:"Secret123!"`
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

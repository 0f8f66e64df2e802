// File: internal/api/signup_request.go
package api

type SignupRequest struct {
	FirstName string `json:"firstName" example:"Alice"`
	LastName  string `json:"lastName" example:"Smith"`
	Email     string `json:"email" validate:"email" example:"alice@example.com"`
	Password  string `json:"password" validate:"min=6" example:"Secret123!"`
}

func (r *SignupRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

// File: internal/api/application_request.go
package api

type ApplicationRequest struct {
	FirstName   string  `json:"firstName" example:"Alice"`
	LastName    string  `json:"lastName" example:"Smith"`
	CoverLetter *string `json:"coverLetter,omitempty" example:"I would love to join."`
}

// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/store"
	"job-portal/internal/validation"

	"github.com/labstack/echo/v4"
)

// LoginHandler exchanges email and password for a session token. Unknown
// emails and wrong passwords get the same answer.
func LoginHandler(db database.DB, creds Credentials) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := validation.Bind(c, validation.Login, &req); err != nil {
			return validation.Respond(c, err)
		}

		user, err := getUserByEmail(c.Request().Context(), db, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			creds.CompareDummy(req.Password)
			return c.JSON(http.StatusUnauthorized, api.Errors("Invalid email or password."))
		}
		if err != nil {
			return err
		}

		if err := creds.ComparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.Errors("Invalid email or password."))
		}

		token, err := creds.IssueAccessToken(*user)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
	}
}

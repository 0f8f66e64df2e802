// File: internal/handler/auth/signup.go
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/model"
	"job-portal/internal/store"
	"job-portal/internal/validation"

	"github.com/labstack/echo/v4"
)

const errEmailTaken = "User with this email already exists."

// SignupHandler registers a new user with the default role.
func SignupHandler(db database.DB, creds Credentials) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := validation.Bind(c, validation.Signup, &req); err != nil {
			return validation.Respond(c, err)
		}
		ctx := c.Request().Context()

		_, err := getUserByEmail(ctx, db, req.Email)
		switch {
		case err == nil:
			return c.JSON(http.StatusBadRequest, api.Errors(errEmailTaken))
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		hash, err := creds.HashPassword(req.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		_, err = createUser(ctx, db, &model.User{
			Email:        req.Email,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			PasswordHash: hash,
			Role:         model.RoleUser,
		})
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, api.Errors(errEmailTaken))
		}
		if err != nil {
			return err
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User registered successfully."})
	}
}

// File: internal/handler/users/users.go
package users

import (
	"errors"
	"net/http"

	"job-portal/internal/api"
	"job-portal/internal/database"
	"job-portal/internal/middleware"
	"job-portal/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByID            = store.GetUserByID
	listApplicationsByUser = store.ListApplicationsByUser
)

// ProfileHandler returns the authenticated user's profile without the
// password hash.
func ProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.Claims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized: Missing token"})
		}

		user, err := getUserByID(c.Request().Context(), db, claims.UserID())
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "User not found"})
		}
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.NewProfileResponse(user))
	}
}

// AppliedJobsHandler lists the authenticated user's applications.
func AppliedJobsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := middleware.Claims(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Unauthorized: Missing token"})
		}

		apps, err := listApplicationsByUser(c.Request().Context(), db, claims.UserID())
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, api.ApplicationsResponse{Applications: apps})
	}
}

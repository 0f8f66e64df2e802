// File: internal/handler/auth/auth.go
package auth

import (
	"job-portal/internal/model"
	"job-portal/internal/store"
)

// Credentials hashes and checks passwords and issues session tokens.
type Credentials interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
	CompareDummy(password string)
	IssueAccessToken(user model.User) (string, error)
}

var (
	getUserByEmail = store.GetUserByEmail
	createUser     = store.CreateUser
)

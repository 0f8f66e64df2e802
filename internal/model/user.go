// File: internal/model/user.go
package model

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           string   `db:"id" json:"id"`
	Email        string   `db:"email" json:"email"`
	FirstName    string   `db:"first_name" json:"firstName"`
	LastName     string   `db:"last_name" json:"lastName"`
	PasswordHash string   `db:"password_hash" json:"-"`
	Role         Role     `db:"role" json:"role"`
	AppliedJobs  []string `db:"applied_jobs" json:"appliedJobs"`
}

// ProfileName is the display name carried in access tokens.
func (u User) ProfileName() string {
	return u.FirstName + " " + u.LastName
}

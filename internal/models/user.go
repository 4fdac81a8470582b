package models

import (
	"database/sql"
	"time"
)

// User is a row of the users table.
// Google accounts have no password hash; local accounts have no provider user ID.
type User struct {
	UserID         string         `db:"user_id"`
	Name           string         `db:"name"`
	Email          string         `db:"email"`
	PasswordHash   sql.NullString `db:"password_hash"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	EmailVerified  bool           `db:"email_verified"`
	AuditFields
	LastLoginAt *time.Time `db:"last_login_at"`
}

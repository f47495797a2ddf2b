package models

import "time"

// User is an account on the news site. PasswordHash holds the bcrypt hash
// and is never serialized.
type User struct {
	ID           int64      `json:"id" db:"id" bson:"id"`
	Name         string     `json:"name" db:"name" bson:"name"`
	Email        string     `json:"email" db:"email" bson:"email"`
	PasswordHash string     `json:"-" db:"password_hash" bson:"password_hash"`
	Avatar       string     `json:"avatar" db:"avatar" bson:"avatar"`
	Role         string     `json:"role" db:"role" bson:"role"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" bson:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login" bson:"last_login,omitempty"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

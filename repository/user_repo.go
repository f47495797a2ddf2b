package repository

import "github.com/thethao247/backend/models"

// UserRepository defines the interface for user operations
type UserRepository interface {
	CreateUser(user *models.User, password string) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
	UpdateLastLogin(id int64) error
}

package repository

import (
	"database/sql"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser creates a user after validating email uniqueness and hashing the
// password. The plaintext password is never written anywhere.
func (r *PostgresUserRepo) CreateUser(user *models.User, password string) error {
	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrDuplicateEmail
	}

	if password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	return r.DB.QueryRow(`
		INSERT INTO users (name, email, password_hash, avatar, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, user.Name, user.Email, user.PasswordHash, user.Avatar, user.Role, user.CreatedAt).Scan(&user.ID)
}

// GetUserByEmail fetches a user by email, returning nil when none exists.
func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, COALESCE(avatar, ''), role, created_at, last_login
		FROM users
		WHERE email=$1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Avatar, &user.Role, &user.CreatedAt, &user.LastLogin)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// GetUserByID fetches a user by primary key, returning nil when none exists.
func (r *PostgresUserRepo) GetUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, COALESCE(avatar, ''), role, created_at, last_login
		FROM users
		WHERE id=$1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Avatar, &user.Role, &user.CreatedAt, &user.LastLogin)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// UpdateLastLogin stamps the user's last successful login.
func (r *PostgresUserRepo) UpdateLastLogin(id int64) error {
	_, err := r.DB.Exec(`UPDATE users SET last_login=$1 WHERE id=$2`, time.Now().UTC(), id)
	return err
}

package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/models"
)

func newUserRepoMock(t *testing.T) (*PostgresUserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresUserRepo(db), mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "avatar", "role", "created_at", "last_login",
	})
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("taken@example.com").
		WillReturnRows(userRows().AddRow(1, "Existing", "taken@example.com", "hash", "E", "user", time.Now(), nil))

	user := &models.User{Name: "New", Email: "taken@example.com"}
	err := repo.CreateUser(user, "whatever")

	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_HashesPassword(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("new@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	user := &models.User{Name: "New", Email: "new@example.com", Avatar: "N"}
	err := repo.CreateUser(user, "s3cret-pw")

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, models.RoleUser, user.Role)

	// Plaintext must never be persisted; only a verifiable bcrypt hash.
	assert.NotEqual(t, "s3cret-pw", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pw")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_EmptyPassword(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("new@example.com").
		WillReturnError(sql.ErrNoRows)

	user := &models.User{Name: "New", Email: "new@example.com"}
	err := repo.CreateUser(user, "")

	assert.EqualError(t, err, "password cannot be empty")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail("missing@example.com")

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetUserByID_Found(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	created := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(userRows().AddRow(5, "Admin", "admin@thethao247.vn", "hash", "A", "admin", created, nil))

	user, err := repo.GetUserByID(5)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(5), user.ID)
	assert.True(t, user.IsAdmin())
	assert.Nil(t, user.LastLogin)
}

func TestUpdateLastLogin(t *testing.T) {
	repo, mock := newUserRepoMock(t)

	mock.ExpectExec("UPDATE users SET last_login").
		WithArgs(sqlmock.AnyArg(), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLastLogin(5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

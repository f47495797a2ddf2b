package handlers

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/models"
)

// In-memory stand-ins for the repositories, mirroring the real behavior the
// handlers rely on.

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[int64]*models.User
	nextID  int64

	lastLoginCalls []int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[int64]*models.User{},
	}
}

func (f *fakeUserRepo) CreateUser(user *models.User, password string) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return apperrors.ErrDuplicateEmail
	}
	// MinCost keeps the tests fast; the contract is the same.
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
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
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetUserByID(id int64) (*models.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) UpdateLastLogin(id int64) error {
	f.lastLoginCalls = append(f.lastLoginCalls, id)
	if u, ok := f.byID[id]; ok {
		now := time.Now().UTC()
		u.LastLogin = &now
	}
	return nil
}

func (f *fakeUserRepo) delete(id int64) {
	if u, ok := f.byID[id]; ok {
		delete(f.byEmail, u.Email)
		delete(f.byID, id)
	}
}

type fakeArticleRepo struct {
	articles map[int64]*models.Article
	nextID   int64

	gotCategory string
	gotLimit    int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[int64]*models.Article{}}
}

func (f *fakeArticleRepo) CreateArticle(article *models.Article) error {
	f.nextID++
	article.ID = f.nextID
	article.Views = 0
	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	f.articles[article.ID] = article
	return nil
}

func (f *fakeArticleRepo) GetArticles(category string, limit int) ([]*models.Article, error) {
	f.gotCategory = category
	f.gotLimit = limit

	var out []*models.Article
	for _, a := range f.articles {
		if category != "" && a.Category != category {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeArticleRepo) GetArticleByID(id int64) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, nil
	}
	a.Views++
	return a, nil
}

func (f *fakeArticleRepo) CountArticles() (int64, error) {
	return int64(len(f.articles)), nil
}

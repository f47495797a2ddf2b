package repository

import (
	"database/sql"
	"time"

	"github.com/thethao247/backend/models"
)

type PostgresArticleRepo struct {
	DB *sql.DB
}

func NewPostgresArticleRepo(db *sql.DB) *PostgresArticleRepo {
	return &PostgresArticleRepo{DB: db}
}

// CreateArticle inserts a new article and fills in its generated id.
func (r *PostgresArticleRepo) CreateArticle(article *models.Article) error {
	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	return r.DB.QueryRow(`
		INSERT INTO articles (title, category, content, excerpt, image_url, author_id, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8)
		RETURNING id
	`, article.Title, article.Category, article.Content, article.Excerpt,
		article.ImageURL, article.AuthorID, article.CreatedAt, article.UpdatedAt).Scan(&article.ID)
}

// GetArticles lists articles newest-first. An empty category means no filter.
func (r *PostgresArticleRepo) GetArticles(category string, limit int) ([]*models.Article, error) {
	query := `
		SELECT id, title, category, content, COALESCE(excerpt, ''), COALESCE(image_url, ''),
		       COALESCE(author_id, 0), views, created_at, updated_at
		FROM articles
	`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category=$1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, category, limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		a := &models.Article{}
		if err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Content, &a.Excerpt,
			&a.ImageURL, &a.AuthorID, &a.Views, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticleByID bumps the view counter and returns the article in one
// statement, so concurrent fetches never lose an increment.
func (r *PostgresArticleRepo) GetArticleByID(id int64) (*models.Article, error) {
	a := &models.Article{}
	err := r.DB.QueryRow(`
		UPDATE articles SET views = views + 1
		WHERE id=$1
		RETURNING id, title, category, content, COALESCE(excerpt, ''), COALESCE(image_url, ''),
		          COALESCE(author_id, 0), views, created_at, updated_at
	`, id).Scan(&a.ID, &a.Title, &a.Category, &a.Content, &a.Excerpt,
		&a.ImageURL, &a.AuthorID, &a.Views, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return a, nil
}

// CountArticles reports how many articles exist, used by the seeder.
func (r *PostgresArticleRepo) CountArticles() (int64, error) {
	var count int64
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&count)
	return count, err
}

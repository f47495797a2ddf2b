package repository

import "github.com/thethao247/backend/models"

// ArticleRepository defines the interface for article operations
type ArticleRepository interface {
	CreateArticle(article *models.Article) error
	// GetArticles lists newest-first, optionally filtered by category.
	GetArticles(category string, limit int) ([]*models.Article, error)
	// GetArticleByID fetches one article and atomically bumps its view
	// counter. Returns nil when the id is unknown, without mutating anything.
	GetArticleByID(id int64) (*models.Article, error)
	CountArticles() (int64, error)
}

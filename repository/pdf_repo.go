package repository

import (
	"github.com/thethao247/backend/models"
)

// PDFRepository provides methods to fetch data for PDF generation
type PDFRepository struct {
	ArticleRepo ArticleRepository
	UserRepo    UserRepository
}

// NewPDFRepository initializes a PDF repository
func NewPDFRepository(articleRepo ArticleRepository, userRepo UserRepository) *PDFRepository {
	return &PDFRepository{
		ArticleRepo: articleRepo,
		UserRepo:    userRepo,
	}
}

// GetArticleForPDF fetches the article to render. A render counts as a view,
// same as any other detail fetch.
func (r *PDFRepository) GetArticleForPDF(id int64) (*models.Article, error) {
	return r.ArticleRepo.GetArticleByID(id)
}

// GetAuthorForPDF resolves the byline; nil when the author no longer exists.
func (r *PDFRepository) GetAuthorForPDF(authorID int64) (*models.User, error) {
	if authorID == 0 {
		return nil, nil
	}
	return r.UserRepo.GetUserByID(authorID)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/models"
	"github.com/thethao247/backend/repository"
)

const defaultArticleLimit = 10

type ArticleHandler struct {
	Repo repository.ArticleRepository
}

type createArticleRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
}

// GetArticles handler
func (h *ArticleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	limit := defaultArticleLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, ApiResponse{
				Success: false,
				Message: "invalid limit",
			})
			return
		}
		limit = parsed
	}

	articles, err := h.Repo.GetArticles(category, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if articles == nil {
		articles = []*models.Article{}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"articles": articles,
		},
	})
}

// GetArticleByID handler. Each successful fetch counts one view.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request, id string) {
	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid article id",
		})
		return
	}

	article, err := h.Repo.GetArticleByID(articleID)
	if err != nil {
		writeError(w, err)
		return
	}
	if article == nil {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "article not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data: map[string]interface{}{
			"article": article,
		},
	})
}

// CreateArticle handler, admin only.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request, user *models.User) {
	if !user.IsAdmin() {
		writeError(w, apperrors.ErrForbidden)
		return
	}

	var req createArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid request payload: " + err.Error(),
		})
		return
	}

	if req.Title == "" || req.Category == "" || req.Content == "" {
		writeError(w, apperrors.ErrValidation)
		return
	}

	article := &models.Article{
		Title:    req.Title,
		Category: req.Category,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		ImageURL: req.ImageURL,
		AuthorID: user.ID,
	}

	if err := h.Repo.CreateArticle(article); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Article created successfully",
		Data: map[string]interface{}{
			"article": article,
		},
	})
}

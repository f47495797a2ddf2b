package routes

import (
	"net/http"
	"strings"

	"github.com/thethao247/backend/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	authMw *handlers.AuthMiddleware,
	userHandler *handlers.UserHandler,
	articleHandler *handlers.ArticleHandler,
	uploadHandler *handlers.UploadHandler,
	pdfHandler *handlers.PDFHandler,
) {
	// Auth routes
	http.Handle("/api/auth/register", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Register))))
	http.Handle("/api/auth/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Login))))
	http.Handle("/api/auth/me", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		authMw.TokenRequired(userHandler.Me)(w, r)
	}))))
	http.Handle("/api/auth/logout", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		authMw.TokenRequired(userHandler.Logout)(w, r)
	}))))

	// Article routes
	http.Handle("/api/articles", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			articleHandler.GetArticles(w, r)
		case http.MethodPost:
			authMw.TokenRequired(articleHandler.CreateArticle)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Article detail and PDF export
	http.Handle("/api/articles/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, "/api/articles/")
		if id, ok := strings.CutSuffix(rest, "/pdf"); ok {
			pdfHandler.ArticlePDF(w, r, id)
			return
		}
		if rest != "" && !strings.Contains(rest, "/") {
			articleHandler.GetArticleByID(w, r, rest)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))

	// Image upload for article covers
	http.Handle("/api/upload", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		authMw.TokenRequired(uploadHandler.UploadImage)(w, r)
	}))))

	// Health check
	http.Handle("/api/health", withCORS(http.HandlerFunc(handlers.RecoverWrapper(handlers.Health))))
}

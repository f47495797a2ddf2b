package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/thethao247/backend/auth"
	"github.com/thethao247/backend/config"
	"github.com/thethao247/backend/db"
	"github.com/thethao247/backend/db/mongo"
	"github.com/thethao247/backend/db/postgres"
	"github.com/thethao247/backend/handlers"
	"github.com/thethao247/backend/repository"
	"github.com/thethao247/backend/routes"
	"github.com/thethao247/backend/seed"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	var store db.DB
	var userRepo repository.UserRepository
	var articleRepo repository.ArticleRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		store = pg

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		articleRepo = repository.NewPostgresArticleRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		store = mg

		userRepo = repository.NewMongoUserRepo(mg.Client)
		articleRepo = repository.NewMongoArticleRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}
	defer store.Disconnect()

	if cfg.SeedData {
		if err := seed.Run(userRepo, articleRepo); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	// Handlers
	authMw := &handlers.AuthMiddleware{Tokens: tokens, Users: userRepo}
	userHandler := &handlers.UserHandler{
		Repo:                  userRepo,
		Tokens:                tokens,
		TokenLifetime:         cfg.TokenLifetime,
		ExtendedTokenLifetime: cfg.ExtendedTokenLifetime,
	}
	articleHandler := &handlers.ArticleHandler{Repo: articleRepo}
	uploadHandler := &handlers.UploadHandler{}

	// PDF handler with combined repository
	pdfRepo := repository.NewPDFRepository(articleRepo, userRepo)
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo}

	// Setup routes including PDF
	routes.SetupRoutes(authMw, userHandler, articleHandler, uploadHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}

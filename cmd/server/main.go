package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"library-system/internal/api/handlers"
	"library-system/internal/api/middleware"
	"library-system/internal/api/routes"
	"library-system/internal/config"
	"library-system/internal/repositories"
	"library-system/internal/services"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	dbConfig := config.LoadDatabaseConfig()
	db, err := config.NewDatabase(dbConfig)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v", dbConfig.Path, err)
	}
	defer db.Close()
	log.Printf("Connected to the SQLite database at %s", dbConfig.Path)

	userRepo := repositories.NewSQLiteUserRepository(db)
	bookRepo := repositories.NewSQLiteBookRepository(db)

	// Sessions live in redis when available, in memory otherwise.
	var sessionRepo repositories.SessionRepository
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		client, err := repositories.OpenRedis(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer client.Close()
		sessionRepo = repositories.NewRedisSessionRepository(client)
		log.Printf("Using redis session store")
	} else {
		sessionRepo = repositories.NewMemorySessionRepository()
		log.Printf("Using in-memory session store")
	}

	authService := services.NewAuthService(userRepo, sessionRepo)
	catalogService := services.NewCatalogService(bookRepo)
	accountService := services.NewAccountService(userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	bookHandler := handlers.NewBookHandler(catalogService)
	accountHandler := handlers.NewAccountHandler(accountService)
	healthHandler := handlers.NewHealthHandler()

	authMiddleware := middleware.NewAuthMiddleware(authService)

	router := routes.NewRouter(authHandler, bookHandler, accountHandler, healthHandler, authMiddleware)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("Library system server starting on port %s", port)
	log.Printf("Available endpoints:")
	log.Printf("  - GET    /health")
	log.Printf("  - POST   /api/login")
	log.Printf("  - POST   /api/logout")
	log.Printf("  - GET    /api/check-session")
	log.Printf("  - GET    /api/books")
	log.Printf("  - GET    /api/books/category/:category")
	log.Printf("  - POST   /api/books")
	log.Printf("  - PUT    /api/books/:id/availability")
	log.Printf("  - DELETE /api/books/:id")
	log.Printf("  - GET    /api/accounts")
	log.Printf("  - POST   /api/accounts/student")
	log.Printf("  - POST   /api/accounts/admin")
	log.Printf("  - DELETE /api/accounts/:type/:id")

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

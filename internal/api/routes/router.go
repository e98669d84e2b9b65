package routes

import (
	"net/http"

	"library-system/internal/api/handlers"
	"library-system/internal/api/middleware"
	"library-system/internal/utils"
)

// NewRouter sets up all the routes for the application
func NewRouter(
	authHandler *handlers.AuthHandler,
	bookHandler *handlers.BookHandler,
	accountHandler *handlers.AccountHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) http.Handler {
	mux := http.NewServeMux()

	listBooks := authMiddleware.RequireSession(bookHandler.ListBooks)
	listBooksByCategory := authMiddleware.RequireSession(bookHandler.ListBooksByCategory)
	createBook := authMiddleware.RequireAdmin(bookHandler.CreateBook)
	updateAvailability := authMiddleware.RequireAdmin(bookHandler.UpdateAvailability)
	deleteBook := authMiddleware.RequireAdmin(bookHandler.DeleteBook)

	listAccounts := authMiddleware.RequireAdmin(accountHandler.ListAccounts)
	createStudent := authMiddleware.RequireAdmin(accountHandler.CreateStudent)
	createAdmin := authMiddleware.RequireAdmin(accountHandler.CreateAdmin)
	deleteAccount := authMiddleware.RequireAdmin(accountHandler.DeleteAccount)

	logout := authMiddleware.RequireSession(authHandler.Logout)

	// Health check endpoint
	mux.HandleFunc("/health", healthHandler.Health)

	// Authentication endpoints
	mux.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			authHandler.Login(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			logout(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/check-session", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			authHandler.CheckSession(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Book endpoints
	mux.HandleFunc("/api/books", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listBooks(w, r)
		case http.MethodPost:
			createBook(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/books/category/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listBooksByCategory(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// /api/books/:id and /api/books/:id/availability
	mux.HandleFunc("/api/books/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			updateAvailability(w, r)
		case http.MethodDelete:
			deleteBook(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Account endpoints (admin only)
	mux.HandleFunc("/api/accounts", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			listAccounts(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/accounts/student", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			createStudent(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/accounts/admin", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			createAdmin(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// /api/accounts/:type/:id
	mux.HandleFunc("/api/accounts/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			deleteAccount(w, r)
		default:
			utils.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	// Apply CORS middleware to all routes
	return middleware.CORSMiddleware(mux)
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"dineflow-backend/internal/database"
	"dineflow-backend/internal/handlers"
	customMiddleware "dineflow-backend/internal/middleware"
	"dineflow-backend/internal/models"
	"dineflow-backend/internal/notify"
	"dineflow-backend/internal/repository"
	"dineflow-backend/internal/sentiment"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	// Required env vars
	mongoURI := getEnv("MONGODB_URI", "")
	dbName := getEnv("DB_NAME", "dineflow")
	jwtSecret := getEnv("JWT_SECRET", "")
	port := getEnv("PORT", "8080")

	if mongoURI == "" {
		log.Fatal("❌ MONGODB_URI is required")
	}
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}

	// Connect to MongoDB
	if err := database.Connect(mongoURI, dbName); err != nil {
		log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo()
	menuRepo := repository.NewMenuItemRepo()
	orderRepo := repository.NewOrderRepo()
	feedbackRepo := repository.NewFeedbackRepo()

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create user indexes: %v", err)
	}
	if err := menuRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create menu item indexes: %v", err)
	}
	if err := orderRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create order indexes: %v", err)
	}
	if err := feedbackRepo.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️  Warning: failed to create feedback indexes: %v", err)
	}

	if n, err := menuRepo.Count(ctx); err == nil {
		log.Printf("🍽️  %d menu items in catalog", n)
	}

	// Initialize the kitchen notifier — email when Resend is configured,
	// logging mock otherwise
	var notifier notify.Notifier
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		notifier = notify.NewEmail(apiKey, getEnv("FROM_EMAIL", "alerts@dineflow.app"), getEnv("ALERT_EMAIL", "kitchen@dineflow.app"))
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, using mock notifier")
		notifier = notify.NewMock()
	}

	// Shared sentiment analyzer (immutable config, safe across requests)
	analyzer := sentiment.NewAnalyzer()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtSecret)
	menuHandler := handlers.NewMenuHandler(menuRepo)
	orderHandler := handlers.NewOrderHandler(orderRepo, menuRepo, feedbackRepo, analyzer, notifier)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo, orderRepo, menuRepo, userRepo, analyzer)
	userHandler := handlers.NewUserHandler(userRepo)

	// Setup chi router
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"dineflow-backend"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public routes (no auth required)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/menu", menuHandler.List)
		r.Get("/menu/{id}", menuHandler.Get)

		// Protected routes (JWT required)
		r.Group(func(r chi.Router) {
			r.Use(customMiddleware.JWTAuth(jwtSecret))

			r.Get("/auth/me", authHandler.Me)

			r.Post("/orders", orderHandler.Create)
			r.Get("/orders/my-orders", orderHandler.MyOrders)
			r.Post("/orders/feedback", orderHandler.SubmitFeedback)
			r.Get("/users", userHandler.ListByRole)

			// Chef and admin routes
			r.Group(func(r chi.Router) {
				r.Use(customMiddleware.RequireRole(models.RoleChef, models.RoleAdmin))

				r.Patch("/orders/{id}/status", orderHandler.UpdateStatus)
				r.Post("/orders/{id}/assign-chef", orderHandler.AssignChef)
				r.Get("/feedback/user-menu-item/{userID}/{menuItemID}", feedbackHandler.UserMenuItemInsight)
				r.Get("/feedback/menu-item/{menuItemID}", feedbackHandler.MenuItemInsight)
			})

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(customMiddleware.RequireRole(models.RoleAdmin))

				r.Get("/orders/all-orders", orderHandler.AllOrders)
				r.Get("/feedback/analytics/admin", feedbackHandler.AdminAnalytics)
				r.Post("/menu", menuHandler.Create)
			})

			r.Get("/orders/{id}", orderHandler.Get)
			r.Get("/orders/{id}/feedback", orderHandler.OrderFeedback)
		})
	})

	// Start server
	log.Printf("🚀 Dineflow backend starting on port %s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

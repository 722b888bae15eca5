package main

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"skillswap-web/internal/api"
	"skillswap-web/internal/config"
	"skillswap-web/internal/handlers"
	"skillswap-web/internal/session"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize session store
	var sessions session.Store
	switch cfg.SessionBackend {
	case "memory":
		sessions = session.NewMemoryStore()
		log.Println("Using in-memory session store; sessions will not survive restarts")
	default:
		store, err := session.NewPostgresStore(session.PostgresConfig{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Name:     cfg.DBName,
		})
		if err != nil {
			log.Fatalf("Failed to initialize session store: %v", err)
		}
		defer store.Close()
		sessions = store
	}

	// Initialize backend client
	backend := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)

	srv := handlers.NewServer(backend, sessions, cfg.SessionCookie, cfg.SessionTTL)

	authLimiter := rate.NewLimiter(rate.Every(time.Minute), 10) // credential form submissions
	router := srv.Routes(authLimiter)

	// CORS configuration for the JSON endpoints
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	// Start server
	log.Printf("Server running on port %s", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, corsHandler.Handler(router)))
}

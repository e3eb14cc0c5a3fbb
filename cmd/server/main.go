package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/abhiwebdesign/dearyou-backend/internal/config"
	"github.com/abhiwebdesign/dearyou-backend/internal/database"
	"github.com/abhiwebdesign/dearyou-backend/internal/handlers"
	"github.com/abhiwebdesign/dearyou-backend/internal/mailer"
	"github.com/abhiwebdesign/dearyou-backend/internal/routes"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	if cfg.SMTPUsername == "" {
		log.Println("⚠️  WARNING: SMTP_USERNAME not set. Submission endpoints will fail to notify.")
	} else if cfg.SMTPPassword == "" {
		log.Println("⚠️  WARNING: SMTP_PASSWORD not set. Emails will be logged, not sent (dry-run mode).")
	}

	// Connect to MongoDB
	log.Printf("Connecting to MongoDB...")
	log.Printf("MongoDB URI: %s", maskMongoURL(cfg.MongoURL))
	store, err := database.Connect(cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: ", err)
	}
	defer store.Disconnect()

	sender := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	h := handlers.New(store, sender, cfg.NotificationEmail)

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r, h, cfg.APIPrefix)

	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Printf("  GET  %s/", cfg.APIPrefix)
	log.Printf("  POST %s/status", cfg.APIPrefix)
	log.Printf("  GET  %s/status", cfg.APIPrefix)
	log.Printf("  POST %s/submit-journal", cfg.APIPrefix)
	log.Printf("  POST %s/email-signup", cfg.APIPrefix)

	log.Printf("🚀 DearYou backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// maskMongoURL hides the password portion of a mongodb:// URI for logging.
func maskMongoURL(uri string) string {
	if !strings.Contains(uri, "@") {
		return uri
	}
	parts := strings.SplitN(uri, "@", 2)
	if idx := strings.LastIndex(parts[0], ":"); idx != -1 && !strings.HasSuffix(parts[0], "//") {
		return parts[0][:idx+1] + "***@" + parts[1]
	}
	return uri
}

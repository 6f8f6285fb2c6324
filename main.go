package main

import (
	"log"
	"net/http"
	"os"

	"noteshare/config"
	"noteshare/handlers"
	"noteshare/middleware"
	"noteshare/storage"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("main: ", err)
	}

	if err := config.Connect(cfg); err != nil {
		log.Fatal("main: ", err)
	}

	var files storage.Store
	if cfg.S3.Endpoint != "" {
		files, err = storage.NewS3Store(cfg.S3)
	} else {
		files, err = storage.NewLocalStore(cfg.UploadDir)
	}
	if err != nil {
		log.Fatal("main: ", err)
	}

	authMiddleware, err := middleware.EnsureValidToken(cfg.Auth)
	if err != nil {
		log.Fatal("main: ", err)
	}

	h := &handlers.DBHandler{
		DB:        config.Database,
		Files:     files,
		UploadDir: cfg.UploadDir,
		APIKey:    cfg.GoogleAPIKey,
	}
	mux := h.Routes()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(authMiddleware(mux))

	serverAddr := "0.0.0.0:" + cfg.Port
	log.Println("main: listening on", serverAddr)
	if err := http.ListenAndServe(serverAddr, corsHandler); err != nil {
		log.Fatal("main: ", err)
	}
}

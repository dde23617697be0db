package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/Daniellmm/3D-backend/config"
	"github.com/Daniellmm/3D-backend/routes"
	"github.com/Daniellmm/3D-backend/storage"
	"github.com/Daniellmm/3D-backend/upload"
)

func loadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
}

func setupRouter(store storage.ListingStore, saver *upload.Saver, redisClient *redis.Client) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, store, saver, redisClient)
	return router
}

func main() {
	loadEnv()
	cfg := config.Load()

	client, err := config.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer config.CloseDBConnection(client)

	store := storage.NewMongoStore(config.ListingCollection(client, cfg))

	saver, err := upload.NewSaver(cfg.ImageDir, cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directories: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = config.InitRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	}

	router := setupRouter(store, saver, redisClient)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Minute,
		WriteTimeout:   10 * time.Minute,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server running on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

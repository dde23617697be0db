package config

import (
	"os"
	"strings"
)

type Config struct {
	MongoURI       string
	DBName         string
	Collection     string
	Port           string
	AllowedOrigins []string
	ImageDir       string
	UploadDir      string
	RedisAddr      string
	RedisPassword  string
}

func Load() *Config {
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")

	return &Config{
		MongoURI:       os.Getenv("MONGOURI"),
		DBName:         getEnv("DB", "3Dmodeldb"),
		Collection:     getEnv("COLLECTION", "upload-model"),
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: strings.Split(origins, ","),
		ImageDir:       getEnv("IMAGE_DIR", "images"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASS"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

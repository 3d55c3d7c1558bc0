package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the process configuration, loaded from the environment
// with an optional .env file for local development.
type Config struct {
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	Port        string
	JWTSecret   string
	BlobDir     string
	CORSOrigins string
}

func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "neuma"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
		BlobDir:     getEnv("BLOB_DIR", "./data/blobs"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

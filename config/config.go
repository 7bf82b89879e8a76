package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	Host        string
	DatabaseURL string

	// Upload Settings
	UploadDir string

	// Fees in CDF
	PublishFee int
	UnlockFee  int

	// Dev Settings
	SeedDB bool
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		AppPort:     getEnv("PORT", "3000"),
		Host:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		UploadDir: getEnv("UPLOAD_DIR", "./uploads"),

		PublishFee: getEnvInt("PUBLISH_FEE", 1500),
		UnlockFee:  getEnvInt("UNLOCK_FEE", 2500),

		SeedDB: os.Getenv("SEED_DB") == "true",
	}

	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}

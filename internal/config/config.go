package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	MongoURI    string
	DBName      string
	SkipAuth    bool
	UseMockData bool // serve menu/product/order data from in-memory stores
	Environment string
	AppId       string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file successfully")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_EXPIRES_IN", "168h"))
	if err != nil {
		log.Printf("Invalid JWT_EXPIRES_IN, falling back to 168h: %v", err)
		ttl = 168 * time.Hour
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTTTL:      ttl,
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "go-dashboard"),
		SkipAuth:    getEnv("SKIP_AUTH", "false") == "true",
		UseMockData: getEnv("USE_MOCK_DATA", "false") == "true",
		Environment: getEnv("ENVIRONMENT", "development"),
		AppId:       getEnv("APP_ID", "go-dashboard"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string
	DBName         string
	Port           string
	JWTSecret      string
	AdminAPIKey    string
	Timezone       string
	Transactions   bool
	ConnectTimeout time.Duration
	Env            string
}

// LoadConfig reads .env (if present) and then the process environment.
func LoadConfig() Config {
	_ = godotenv.Load()
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		MongoURI:       getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:         getenv("DB_NAME", "smart-attendance"),
		Port:           getenv("PORT", "8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AdminAPIKey:    os.Getenv("ADMIN_API_KEY"),
		Timezone:       getenv("SCHEDULE_TIMEZONE", "Asia/Kolkata"),
		Transactions:   getenvBool("MONGO_TRANSACTIONS", true),
		ConnectTimeout: getenvDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		Env:            getenv("APP_ENV", "production"),
	}
}

func (c Config) Development() bool {
	return c.Env == "development"
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

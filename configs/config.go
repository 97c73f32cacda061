package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string
	LogLevel string

	JWTSecret string
	JWTTTL    time.Duration

	// bearer keys accepted by the public JSON API
	APIKeys []string

	// browser origins allowed by CORS; "*" opens to all
	AllowedOrigins []string

	// reservation capacity: bookings per (date, time) slot
	TotalTables int

	AdminEmail    string
	AdminPassword string

	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string
	FromName  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "foodchef.db"),
		Port:      getEnv("PORT", "8000"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    24 * time.Hour,

		APIKeys:        splitList(getEnv("API_KEYS", "food_chef_api_2024,mobile_app_key")),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		TotalTables:    getEnvInt("TOTAL_TABLES", 20),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SMTPHost:  getEnv("SMTP_HOST", ""),
		SMTPPort:  getEnvInt("SMTP_PORT", 587),
		SMTPUser:  os.Getenv("SMTP_USERNAME"),
		SMTPPass:  os.Getenv("SMTP_PASSWORD"),
		FromEmail: getEnv("FROM_EMAIL", "noreply@foodchef.com"),
		FromName:  getEnv("FROM_NAME", "Food Chef Cafe"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

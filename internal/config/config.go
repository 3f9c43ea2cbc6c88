package config

import (
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds the process configuration, read from the environment.
type Config struct {
	Port            string
	DBURL           string
	JWTSecret       string
	StripeAPISecret string
	StripeProductID string
	// AppOrigin is the externally visible base URL encoded into checkout
	// callback URLs.
	AppOrigin   string
	CORSOrigins []string
}

func Load() Config {
	cfg := Config{
		Port:            getenv("PORT", "8080"),
		DBURL:           os.Getenv("DB_URL"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeAPISecret: os.Getenv("STRIPE_API_SECRET"),
		StripeProductID: os.Getenv("STRIPE_PRODUCT_ID"),
		AppOrigin:       getenv("APP_ORIGIN", "http://localhost:3000"),
		CORSOrigins:     splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET not set, bearer tokens will not verify")
	}
	return cfg
}

func InitDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return db
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

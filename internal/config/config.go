package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port      string
	DBDSN     string
	JWTSecret string
	TokenTTL  int // hours
	LogFile   string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "shopledger.db" // sqlite file in project root
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-insecure-secret"
		log.Println("[config] JWT_SECRET not set, using dev default; set it in production")
	}
	ttl := 72
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, JWTSecret: secret, TokenTTL: ttl, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s TOKEN_TTL_HOURS=%d LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TokenTTL, cfg.LogFile)
	return cfg
}

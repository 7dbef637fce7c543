package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPoolMax  int
	LogFile    string
}

func Load() Config {
	cfg := Config{
		Port:       getenv("PORT", "3000"),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: getenv("DB_PASSWORD", "password"),
		DBName:     getenv("DB_NAME", "stockroom"),
		DBPoolMax:  10,
		LogFile:    os.Getenv("LOG_FILE"),
	}
	if v := os.Getenv("DB_POOL_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DBPoolMax = n
		} else {
			log.Printf("[config] ignoring DB_POOL_MAX=%q", v)
		}
	}
	log.Printf("[config] PORT=%s DB_HOST=%s DB_USER=%s DB_NAME=%s DB_POOL_MAX=%d",
		cfg.Port, cfg.DBHost, cfg.DBUser, cfg.DBName, cfg.DBPoolMax)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

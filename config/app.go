package config

import (
	"os"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName    string
	Port       string
	Env        string
	Debug      bool
	JWTSecret  string
	JWTExpiry  time.Duration
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		expiry := 12 * time.Hour
		if v := os.Getenv("JWT_EXPIRY"); v != "" {
			if d, err := time.ParseDuration(v); err == nil {
				expiry = d
			}
		}
		AppConfig = &Config{
			AppName:   os.Getenv("APP_NAME"),
			Port:      os.Getenv("PORT"),
			Env:       os.Getenv("APP_ENV"),
			Debug:     os.Getenv("DEBUG") == "true",
			JWTSecret: os.Getenv("JWT_SECRET"),
			JWTExpiry: expiry,
		}
	})
}

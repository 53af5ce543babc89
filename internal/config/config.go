package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	// Path is the SQLite database file.
	Path string
}

type StorageConfig struct {
	// Path holds durable assets (logos, rasterized signatures).
	Path string
	// ExportPath holds generated exports (CSV/PDF/XLSX).
	ExportPath    string
	UploadMaxSize int64
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "receipts-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_PATH", "./data/receipts.db")
	viper.SetDefault("STORAGE_PATH", "./storage")
	viper.SetDefault("EXPORT_PATH", "./storage/exports")
	viper.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DB_PATH"),
		},
		Storage: StorageConfig{
			Path:          viper.GetString("STORAGE_PATH"),
			ExportPath:    viper.GetString("EXPORT_PATH"),
			UploadMaxSize: viper.GetInt64("UPLOAD_MAX_SIZE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

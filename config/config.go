package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DevAPIKey is the fallback admin key used when ADMIN_API_KEY is unset.
// Anything but development should override it.
const DevAPIKey = "admin2025_secret_key_change_me"

type Config struct {
	Server  ServerConfig
	Admin   AdminConfig
	CORS    CORSConfig
	OpenAI  OpenAIConfig
	Storage StorageConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

type AdminConfig struct {
	// APIKey is the bearer secret gating every admin route.
	APIKey string
	// UsingFallback is true when the dev fallback key is in effect.
	UsingFallback bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type StorageConfig struct {
	ProjectsFile string
	UploadsDir   string
}

type AppConfig struct {
	Environment  string
	KeepaliveURL string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	adminKey := os.Getenv("ADMIN_API_KEY")
	usingFallback := adminKey == ""
	if usingFallback {
		adminKey = DevAPIKey
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
		},
		Admin: AdminConfig{
			APIKey:        adminKey,
			UsingFallback: usingFallback,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		},
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		},
		Storage: StorageConfig{
			ProjectsFile: getEnv("PROJECTS_FILE", "data/projects.json"),
			UploadsDir:   getEnv("UPLOADS_DIR", "uploads"),
		},
		App: AppConfig{
			Environment:  getEnv("ENVIRONMENT", "development"),
			KeepaliveURL: os.Getenv("KEEPALIVE_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Admin.UsingFallback && cfg.App.Environment != "development" {
		log.Println("CRITICAL SECURITY: using default API key! Set ADMIN_API_KEY in production!")
	}
	if cfg.OpenAI.APIKey == "" {
		log.Println("OPENAI_API_KEY not set, chat endpoint will report unavailable")
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Storage.ProjectsFile == "" {
		return fmt.Errorf("PROJECTS_FILE is required")
	}

	if c.Storage.UploadsDir == "" {
		return fmt.Errorf("UPLOADS_DIR is required")
	}

	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

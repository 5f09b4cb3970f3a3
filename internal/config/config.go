package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Config is populated from environment variables; a .env file is
// auto-loaded when present, real environment variables take
// precedence.
type Config struct {
	Port         string
	DatabaseURL  string
	TemplatesDir string
	MediaRoot    string
	AIServiceURL string
	AILanguage   string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
		MediaRoot:    getEnv("MEDIA_ROOT", "media"),
		AIServiceURL: getEnv("AI_SERVICE_URL", ""),
		AILanguage:   getEnv("AI_LANGUAGE", "english"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

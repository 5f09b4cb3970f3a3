package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TEMPLATES_DIR", "")
	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.Equal(t, "english", cfg.AILanguage)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("AI_SERVICE_URL", "http://ai:8000")
	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "http://ai:8000", cfg.AIServiceURL)
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("USE_MOCK_API", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000/api", cfg.APIURL)
	assert.Equal(t, time.Duration(0), cfg.APITimeout)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.UseMockAPI)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("API_URL", "https://api.example.com/v2/")
	t.Setenv("API_TIMEOUT", "15s")
	t.Setenv("USE_MOCK_API", "true")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://hotel.example.com, https://www.hotel.example.com")

	cfg := Load()

	assert.Equal(t, "https://api.example.com/v2", cfg.APIURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.True(t, cfg.UseMockAPI)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, []string{"https://hotel.example.com", "https://www.hotel.example.com"}, cfg.CORSAllowedOrigins)
}

func TestGetResourcePath_UsesProjectRoot(t *testing.T) {
	t.Setenv("PROJECT_ROOT", "/srv/widget")

	assert.Equal(t, "/srv/widget/resources/find_rooms_response.json", GetResourcePath(FIND_ROOMS_RESPONSE_RESOURCE))
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Hotel served by this widget
const HOTEL_ID = "cm76prt5b00017kb46mvyjgfv"

// Results panel display
const PLACEHOLDER_IMAGE_URL = "https://via.placeholder.com/400x300"
const MAX_SPECIAL_PRICES_SHOWN = 2
const MAX_RECURRING_PRICES_SHOWN = 2

// Redis keys
const SESSION_KEY_FORMAT_V1 = "booking_session_v1:%s"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const FIND_ROOMS_RESPONSE_RESOURCE = "find_rooms_response.json"

// Config is the runtime configuration read from the environment.
type Config struct {
	Env      string
	LogLevel string

	// Base URL of the hotel API, without trailing slash.
	APIURL     string
	APITimeout time.Duration
	UseMockAPI bool

	ServerAddr         string
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	DisplayLocale string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	return Config{
		Env:        getEnv("ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		APIURL:     strings.TrimRight(getEnv("API_URL", "http://localhost:3000/api"), "/"),
		APITimeout: getEnvDuration("API_TIMEOUT", 0),
		UseMockAPI: getEnvBool("USE_MOCK_API", false),

		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 40),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		SessionTTL:    getEnvDuration("SESSION_TTL", 2*time.Hour),

		DisplayLocale: getEnv("DISPLAY_LOCALE", "es"),
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	HTTPPort           string
	APIPrefix          string
	PublicHostname     string
	MaxUploadSize      int64
	UploadDir          string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	KeycloakServerURL  string
	KeycloakRealm      string
	KeycloakClientID   string
	KeycloakSecret     string
	SessionSecret      string
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDB            int64
	PublicRateLimit    int64 // requests per minute per client IP on public routes
}

func LoadConfig() *Config {
	// Optional .env file for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                      // Default development
		LogLevel:           getLogLevel(),                                         // Default INFO
		HTTPPort:           getEnv("API_PORT", "3000"),                            // Default 3000
		APIPrefix:          getEnv("API_PREFIX", "api/v1"),                        // Default api/v1
		PublicHostname:     getEnv("API_HOSTNAME", "http://localhost:3000"),       // Used for absolute asset URLs
		MaxUploadSize:      getEnvAsInt64("MAX_UPLOAD_SIZE", 5*1024*1024),         // Default 5 MB
		UploadDir:          getEnv("UPLOAD_DIR", "uploads"),                       // Default uploads/
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                       // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),                // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "douala_drive"),             // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "douala_drive"),         // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "douala_drive_db"),      // Default database name
		KeycloakServerURL:  getEnv("KEYCLOAK_SERVER_URL", "http://keycloak:8080"), // Identity provider
		KeycloakRealm:      getEnv("KEYCLOAK_REALM", "douala-drive"),              // Realm name
		KeycloakClientID:   getEnv("KEYCLOAK_CLIENT_ID", "douala-drive-api"),      // Client id
		KeycloakSecret:     getEnv("KEYCLOAK_SECRET", ""),                         // Client secret
		SessionSecret:      getEnv("SESSION_SECRET", "defaultSecret"),             // Session secret
		RedisHost:          getEnv("REDIS_HOST", "redis"),                         // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),                     // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                          // Default empty
		RedisDB:            getEnvAsInt64("REDIS_DATABASE", 0),                    // Default 0
		PublicRateLimit:    getEnvAsInt64("PUBLIC_RATE_LIMIT", 120),               // Default 120 req/min
	}
}

// DefaultRoles are the Keycloak realm roles every token carries; they never
// count as a business role when gating access or provisioning a user.
func (c *Config) DefaultRoles() []string {
	return []string{
		"offline_access",
		"uma_authorization",
		"default-roles-" + c.KeycloakRealm,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package config

import (
	"net"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Env             string
	Host            string
	Port            string
	CORSAllowOrigin []string
	LogLevel        string
	ShutdownTimeout time.Duration

	UploadsDir      string
	ObjectStoreType string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	DocumentStoreType string
	MongoURI          string
	MongoDatabase     string
	DatabaseURL       string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return Config{
		Env:             normalizeEnv(v.GetString("ENV")),
		Host:            strings.TrimSpace(v.GetString("HOST")),
		Port:            strings.TrimSpace(v.GetString("PORT")),
		CORSAllowOrigin: splitAndTrim(v.GetString("CORS_ALLOW_ORIGINS")),
		LogLevel:        strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		UploadsDir:      strings.TrimSpace(v.GetString("UPLOADS_DIR")),
		ObjectStoreType: normalizeObjectStore(v.GetString("OBJECT_STORE")),
		AWSRegion:       strings.TrimSpace(v.GetString("AWS_REGION")),
		S3Bucket:        strings.TrimSpace(v.GetString("S3_BUCKET")),
		S3Prefix:        strings.TrimSpace(v.GetString("S3_PREFIX")),

		DocumentStoreType: normalizeDocumentStore(v.GetString("DOCUMENT_STORE")),
		MongoURI:          strings.TrimSpace(v.GetString("MONGO_URI")),
		MongoDatabase:     strings.TrimSpace(v.GetString("MONGO_DATABASE")),
		DatabaseURL:       strings.TrimSpace(v.GetString("DATABASE_URL")),
	}
}

// Addr returns the host:port the API listens on.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:9002")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("UPLOADS_DIR", "uploads")
	v.SetDefault("OBJECT_STORE", "local")
	v.SetDefault("AWS_REGION", "")
	v.SetDefault("S3_BUCKET", "")
	v.SetDefault("S3_PREFIX", "")
	v.SetDefault("DOCUMENT_STORE", "mongo")
	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_DATABASE", "profileforge")
	v.SetDefault("DATABASE_URL", "")
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeObjectStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeDocumentStore(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "postgres", "postgresql", "pg":
		return "postgres"
	case "memory":
		return "memory"
	case "none", "disabled", "off":
		return "none"
	default:
		return "mongo"
	}
}

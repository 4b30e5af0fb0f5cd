package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URI  string
	Name string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AuthConfig controls token signing.
type AuthConfig struct {
	SecretKey                string
	Algorithm                string
	AccessTokenExpireMinutes int
}

// OpenAIConfig configures the profile parsing provider.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	BaseURL    string
	TimeoutSec int
}

// UploadConfig controls where profile pictures go and how large a request may be.
type UploadConfig struct {
	Dir              string
	MaxContentLength int
	Backend          string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated once from environment variables and treated as read-only afterwards.
type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	StoreDriver string
	StaticDir   string
	CORSOrigins []string
	Auth        AuthConfig
	Mongo       MongoConfig
	Database    DatabaseConfig
	MinIO       MinIOConfig
	OpenAI      OpenAIConfig
	Upload      UploadConfig
}

var defaults = map[string]any{
	"PORT":                        "8001",
	"ENV":                         "development",
	"LOG_LEVEL":                   "debug",
	"STORE_DRIVER":                DriverMongo,
	"STATIC_DIR":                  "static",
	"BACKEND_CORS_ORIGINS":        "*",
	"SECRET_KEY":                  "your-secret-key-here",
	"ALGORITHM":                   "HS256",
	"ACCESS_TOKEN_EXPIRE_MINUTES": 30,
	"MONGODB_URI":                 "mongodb://localhost:27017",
	"DB_NAME":                     "resume_generator",
	"DB_PORT":                     "5432",
	"DB_SSLMODE":                  "disable",
	"DB_MAX_OPEN_CONNS":           10,
	"DB_MAX_IDLE_CONNS":           5,
	"DB_CONN_MAX_LIFETIME_SEC":    300,
	"OPENAI_MODEL":                "gpt-3.5-turbo",
	"OPENAI_BASE_URL":             "https://api.openai.com/v1",
	"OPENAI_TIMEOUT_SECONDS":      0,
	"UPLOAD_DIR":                  "uploads",
	"MAX_CONTENT_LENGTH":          16 * 1024 * 1024,
	"STORAGE_BACKEND":             BackendLocal,
	"MINIO_USE_SSL":               false,
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over defaults.
func Load() *AppConfig {
	v := viper.New()
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	return &AppConfig{
		Port:        v.GetString("PORT"),
		Env:         strings.ToLower(strings.TrimSpace(v.GetString("ENV"))),
		LogLevel:    v.GetString("LOG_LEVEL"),
		StoreDriver: strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		StaticDir:   v.GetString("STATIC_DIR"),
		CORSOrigins: splitList(v.GetString("BACKEND_CORS_ORIGINS")),
		Auth: AuthConfig{
			SecretKey:                v.GetString("SECRET_KEY"),
			Algorithm:                v.GetString("ALGORITHM"),
			AccessTokenExpireMinutes: getInt(v, "ACCESS_TOKEN_EXPIRE_MINUTES"),
		},
		Mongo: MongoConfig{
			URI:  v.GetString("MONGODB_URI"),
			Name: v.GetString("DB_NAME"),
		},
		Database: DatabaseConfig{
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			MaxOpenConns:       getInt(v, "DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       getInt(v, "DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec: getInt(v, "DB_CONN_MAX_LIFETIME_SEC"),
		},
		MinIO: MinIOConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    getBool(v, "MINIO_USE_SSL"),
		},
		OpenAI: OpenAIConfig{
			APIKey:     strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
			Model:      v.GetString("OPENAI_MODEL"),
			BaseURL:    v.GetString("OPENAI_BASE_URL"),
			TimeoutSec: getInt(v, "OPENAI_TIMEOUT_SECONDS"),
		},
		Upload: UploadConfig{
			Dir:              v.GetString("UPLOAD_DIR"),
			MaxContentLength: getInt(v, "MAX_CONTENT_LENGTH"),
			Backend:          strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		},
	}
}

// Validate rejects combinations the process cannot start with.
func (c *AppConfig) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverPostgres:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	switch c.Upload.Backend {
	case BackendLocal, BackendMinIO:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.Upload.Backend)
	}
	if c.Env == "production" && c.Auth.SecretKey == defaults["SECRET_KEY"] {
		return fmt.Errorf("SECRET_KEY must be set in production")
	}
	return nil
}

// getInt falls back to the registered default when the variable does not parse.
func getInt(v *viper.Viper, key string) int {
	if i, err := strconv.Atoi(strings.TrimSpace(v.GetString(key))); err == nil {
		return i
	}
	d, _ := defaults[key].(int)
	return d
}

func getBool(v *viper.Viper, key string) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key))); err == nil {
		return b
	}
	d, _ := defaults[key].(bool)
	return d
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

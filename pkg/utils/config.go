package utils

import (
	"errors"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Cache    CacheConfig
	CORS     CORSConfig
	Security SecurityConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Debug    bool
	LogPath  string
	LogLevel string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	MaxConns       int32
	AutoMigrate    bool
	MigrationsPath string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
	Issuer      string
}

// RedisConfig is optional; an empty Addr disables the movie cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	MovieTTL time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type SecurityConfig struct {
	BcryptCost int
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads the given env file; a missing file is fine as long as
// the environment provides the values.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("JWT_ISSUER", "movie-catalog")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_MOVIE_TTL", "1m")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("BCRYPT_COST", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Port:     v.GetString("PORT"),
			Debug:    v.GetBool("DEBUG"),
			LogPath:  v.GetString("LOG_PATH"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetString("DB_PORT"),
			Name:           v.GetString("DB_NAME"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASS"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			MaxConns:       v.GetInt32("DB_MAX_CONNS"),
			AutoMigrate:    v.GetBool("DB_AUTO_MIGRATE"),
			MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		},
		JWT: JWTConfig{
			Secret:      v.GetString("JWT_SECRET"),
			ExpiryHours: v.GetInt("JWT_EXPIRY_HOURS"),
			Issuer:      v.GetString("JWT_ISSUER"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			MovieTTL: v.GetDuration("CACHE_MOVIE_TTL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Security: SecurityConfig{
			BcryptCost: v.GetInt("BCRYPT_COST"),
		},
	}

	return config, nil
}

// Validate checks what the API server cannot start without.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Database.Name == "" {
		return errors.New("DB_NAME is required")
	}
	return nil
}

// DSN builds a postgres URL usable by both pgx and golang-migrate.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

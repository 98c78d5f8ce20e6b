// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultJWTSecret はJWT_SECRET未設定時のフォールバック値です。
// 本番環境では必ず上書きしてください。
const DefaultJWTSecret = "change-me-in-production"

// Config はサーバー全体の設定を保持します。
type Config struct {
	Port string

	// DatabaseURL が設定されている場合、DB_* 各変数より優先されます。
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration

	// RedisHost が空の場合、キャッシュなしで動作します。
	RedisHost     string
	RedisPort     string
	RedisPassword string
	TaskCacheTTL  time.Duration
}

// Load は環境変数から設定を読み込みます。各変数のデフォルト値:
//
//	PORT                        8080
//	DATABASE_URL                (未設定)
//	DB_HOST                     localhost
//	DB_PORT                     5432
//	DB_USER                     postgres
//	DB_PASSWORD                 (空)
//	DB_NAME                     todo
//	DB_SSLMODE                  disable
//	JWT_SECRET                  change-me-in-production
//	JWT_ALGORITHM               HS256
//	ACCESS_TOKEN_EXPIRE_MINUTES 30
//	REDIS_HOST                  (未設定)
//	REDIS_PORT                  6379
//	REDIS_PASSWORD              (空)
//	TASK_CACHE_TTL_MINUTES      5
//
// JWT_ALGORITHM にHS256以外が指定された場合はエラーを返します。
func Load() (Config, error) {
	cfg := Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "todo"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		JWTSecret:     getenv("JWT_SECRET", DefaultJWTSecret),
		JWTAlgorithm:  getenv("JWT_ALGORITHM", "HS256"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPort:     getenv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	// 署名アルゴリズムはHS256のみサポート
	if cfg.JWTAlgorithm != "HS256" {
		return Config{}, fmt.Errorf("unsupported JWT_ALGORITHM %q: only HS256 is supported", cfg.JWTAlgorithm)
	}

	ttlMinutes, err := getenvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	if err != nil {
		return Config{}, err
	}
	cfg.AccessTokenTTL = time.Duration(ttlMinutes) * time.Minute

	cacheMinutes, err := getenvInt("TASK_CACHE_TTL_MINUTES", 5)
	if err != nil {
		return Config{}, err
	}
	cfg.TaskCacheTTL = time.Duration(cacheMinutes) * time.Minute

	return cfg, nil
}

// DSN はPostgres接続文字列を返します。DATABASE_URLが設定されていればそれをそのまま返します。
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

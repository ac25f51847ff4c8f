package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort string

	// CORS
	CORSAllowedOrigin string

	// Seed
	AdminUsername string
	AdminPassword string

	// Rate Limit（req/min単位）
	RateLimitGeneral int
	RateLimitLogin   int
}

// Load は環境変数からConfigを読み込む。
// カレントディレクトリに .env があれば先に読み込む（既存の環境変数が優先）。
// 全フィールドにデフォルト値があるため、未設定でもエラーにはならない。
func Load() (*Config, error) {
	// .env が無い場合のエラーは無視する
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:        getEnvString("SERVER_PORT", "8080"),
		CORSAllowedOrigin: getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		AdminUsername:     getEnvString("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnvString("ADMIN_PASSWORD", "admin123"),
		RateLimitGeneral:  getEnvInt("RATE_LIMIT_GENERAL", 120),
		RateLimitLogin:    getEnvInt("RATE_LIMIT_LOGIN", 10),
	}

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret      string
	GoogleClientID string
	LLMBaseURL     string
	LLMAPIKey      string
	LLMModel       string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	LLMBaseURL = GetEnv("LLM_BASE_URL", "https://api.openai.com/v1")
	LLMAPIKey = GetEnv("LLM_API_KEY")
	LLMModel = GetEnv("LLM_MODEL", "gpt-4o-mini")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if LLMAPIKey == "" {
		log.Println("⚠️ LLM_API_KEY belum diset — endpoint chat akan gagal.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction: error detail (stack) hanya dikirim ke client saat non-prod.
func IsProduction() bool {
	return GetEnv("APP_ENV", "development") == "production"
}

package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	LogLevel  string
	LogFormat string

	// checkout pricing, in cents
	DeliveryFee    int64
	TaxRatePercent int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "food-delivery.db"),
		Port:           getEnv("PORT", "5000"),
		JWTSecret:      getEnv("JWT_SECRET", "changeme"),
		JWTTTL:         7 * 24 * time.Hour,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "console"),
		DeliveryFee:    getEnvInt64("DELIVERY_FEE", 399),
		TaxRatePercent: getEnvInt64("TAX_RATE_PERCENT", 8),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return n
}

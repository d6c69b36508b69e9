package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// AdminConfig is the platform admin credential pair. Admin is not a
// registered user and is checked outside the identity store.
type AdminConfig struct {
	Username string
	Password string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

type BusinessConfig struct {
	OpeningBalance float64
	MinimumBalance float64
	BasicPlanFee   float64
	PremiumPlanFee float64
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "admin"),
			Password: getEnv("ADMIN_PASSWORD", "admin123"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
		Business: BusinessConfig{
			OpeningBalance: getEnvFloat("WALLET_OPENING_BALANCE", 1500),
			MinimumBalance: getEnvFloat("WALLET_MINIMUM_BALANCE", 300),
			BasicPlanFee:   getEnvFloat("SUBSCRIPTION_BASIC_FEE", 500),
			PremiumPlanFee: getEnvFloat("SUBSCRIPTION_PREMIUM_FEE", 1000),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

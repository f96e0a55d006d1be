package app

import (
	"github.com/shoplist-app/shoplist-backend/internal/pkg/logger"
	"github.com/shoplist-app/shoplist-backend/internal/utils"
)

type Config struct {
	JWTSecretKey    string
	DefaultPageSize int
	MaxPageSize     int
	RedisAddr       string
	RedisChannel    string
	Environment     string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		JWTSecretKey:    utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		DefaultPageSize: utils.GetEnvAsInt("DEFAULT_PAGE_SIZE", 20, log),
		MaxPageSize:     utils.GetEnvAsInt("MAX_PAGE_SIZE", 100, log),
		RedisAddr:       utils.GetEnv("REDIS_ADDR", "", log),
		RedisChannel:    utils.GetEnv("REDIS_CHANNEL", "shoplist.activity", log),
		Environment:     utils.GetEnv("ENVIRONMENT", "development", log),
	}
}

package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"taskboard/configs"
	"taskboard/internal/api/v1/handlers"
	"taskboard/internal/auth"
	"taskboard/internal/gateway"
	"taskboard/internal/repository"
	myws "taskboard/internal/websocket"
	"taskboard/pkg/database"
	"taskboard/pkg/logger"
)

// Dependencies is everything the service needs, built once at startup and
// handed to whoever needs it.
type Dependencies struct {
	Config    configs.Config
	Validate  *validator.Validate
	Passwords *auth.Passwords
	Tokens    *auth.Tokens
	Boards    *repository.BoardStore
	Users     *repository.UserStore
	Hub       *myws.Hub
	Gateway   *gateway.Gateway
	Handler   *handlers.Handler

	// RedisClient is nil unless REDIS_HOST is set.
	RedisClient *redis.Client
	// LimiterStorage is nil when rate-limit counters live in memory.
	LimiterStorage fiber.Storage
}

const limiterPrefix = "taskboard:limiter:"

func Build(ctx context.Context, cfg configs.Config) (*Dependencies, error) {
	d := &Dependencies{
		Config:    cfg,
		Validate:  gateway.NewValidator(),
		Passwords: auth.NewPasswords(cfg.BcryptCost),
		Tokens:    auth.NewTokens(cfg.JWTSecret),
		Boards:    repository.NewBoardStore(),
		Hub:       myws.NewHub(),
	}
	d.Users = repository.NewUserStore(d.Boards)
	d.Gateway = gateway.New(d.Users, d.Boards, d.Passwords, d.Tokens, d.Validate).WithPublisher(d.Hub)
	d.Handler = handlers.New(d.Gateway, d.Hub, cfg.Production())

	if d.Tokens.UsingDefaultKey() {
		logger.SecurityLogger.Warn("JWT_SECRET is not set, signing sessions with the built-in development key")
	}
	if cfg.Production() && d.Passwords.Cost() < auth.DefaultCost {
		logger.SecurityLogger.Warn("BCRYPT_COST is below the production default",
			zap.Int("cost", d.Passwords.Cost()), zap.Int("default", auth.DefaultCost))
	}

	client, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("build dependencies: %w", err)
	}
	if client != nil {
		d.RedisClient = client
		d.LimiterStorage = database.NewRedisStorage(client, limiterPrefix)
		logger.SystemLogger.Info("Redis connected", zap.String("addr", cfg.RedisAddr()))
	}
	return d, nil
}

func (d *Dependencies) Close() error {
	if d.LimiterStorage != nil {
		return d.LimiterStorage.Close()
	}
	return nil
}

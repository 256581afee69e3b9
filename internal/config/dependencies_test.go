package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"taskboard/configs"
	"taskboard/pkg/logger"
)

func observeSecurity(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.SecurityLogger
	logger.SecurityLogger = zap.New(core)
	t.Cleanup(func() { logger.SecurityLogger = prev })
	return logs
}

func baseConfig() configs.Config {
	return configs.Config{
		Env:             "development",
		CORSOrigin:      "*",
		JWTSecret:       "deps-test-secret",
		BcryptCost:      12,
		RateLimitMax:    100,
		RateLimitWindow: time.Minute,
	}
}

func TestBuild_InMemory(t *testing.T) {
	d, err := Build(context.Background(), baseConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	assert.Nil(t, d.RedisClient)
	assert.Nil(t, d.LimiterStorage)
	assert.NotNil(t, d.Gateway)
	assert.NotNil(t, d.Handler)
	assert.NotNil(t, NewApp(d))
}

func TestBuild_WeakBcryptCost(t *testing.T) {
	tests := []struct {
		name string
		env  string
		cost int
		warn bool
	}{
		{"production low cost", "production", bcrypt.MinCost, true},
		{"production default cost", "production", 12, false},
		{"development low cost", "development", bcrypt.MinCost, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := observeSecurity(t)
			cfg := baseConfig()
			cfg.Env = tc.env
			cfg.BcryptCost = tc.cost

			_, err := Build(context.Background(), cfg)
			require.NoError(t, err)

			got := logs.FilterMessage("BCRYPT_COST is below the production default").Len()
			if tc.warn {
				assert.Equal(t, 1, got)
			} else {
				assert.Zero(t, got)
			}
		})
	}
}

func TestBuild_DefaultSigningKeyWarns(t *testing.T) {
	logs := observeSecurity(t)
	cfg := baseConfig()
	cfg.JWTSecret = ""

	d, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, d.Tokens.UsingDefaultKey())
	assert.Equal(t, 1, logs.FilterMessage("JWT_SECRET is not set, signing sessions with the built-in development key").Len())
}

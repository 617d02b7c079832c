package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 168, cfg.JWT.ExpireHours)
	assert.Equal(t, 30, cfg.Stats.CacheTTLSeconds)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRE_HOURS", "24")
	t.Setenv("REDIS_ADDR", "localhost:6400")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 24, cfg.JWT.ExpireHours)
	assert.Equal(t, "localhost:6400", cfg.Redis.Addr)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "surplustoserve", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://u:p@db:5432/surplustoserve?sslmode=disable", db.DSN())

	db.URL = "postgres://explicit/override"
	assert.Equal(t, "postgres://explicit/override", db.DSN())
}

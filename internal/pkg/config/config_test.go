package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, DenylistRedis, cfg.DenylistBackend)
	assert.Equal(t, "roadready", cfg.Mongo.Database)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":         "s3cret",
		"JWT_TTL":            "30m",
		"ENV":                "production",
		"CORS_ALLOW_ORIGINS": "https://a.example,https://b.example",
		"DENYLIST_BACKEND":   "memory",
		"REDIS_DB":           "2",
	}))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, DenylistMemory, cfg.DenylistBackend)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]map[string]string{
		"missing secret":  {},
		"blank secret":    {"JWT_SECRET": "   "},
		"bad backend":     {"JWT_SECRET": "s", "DENYLIST_BACKEND": "memcached"},
		"zero ttl":        {"JWT_SECRET": "s", "JWT_TTL": "0s"},
		"invalid timeout": {"JWT_SECRET": "s", "REQUEST_TIMEOUT": "soon"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}

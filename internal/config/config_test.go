package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashbook/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_NAME", "ledger")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("CACHE_TTL", "1m")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendPostgres, cfg.App.Backend)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "chit_changed", cfg.AMQP.Queue)
	assert.Equal(t, "postgres://postgres:@localhost:5432/ledger?sslmode=disable", cfg.ConnectionString())
}

func TestLoad_Errors(t *testing.T) {
	type testCase struct {
		env map[string]string
	}

	tests := map[string]testCase{
		"MissingSecret": {
			env: map[string]string{"JWT_SECRET": ""},
		},
		"UnknownBackend": {
			env: map[string]string{"JWT_SECRET": "s3cret", "BACKEND": "sheets"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

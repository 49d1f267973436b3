package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Storage.Driver = "memory"
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "memory storage with secrets", mutate: func(*Config) {}},
		{
			name: "postgres with connection",
			mutate: func(cfg *Config) {
				cfg.Storage.Driver = "postgres"
				cfg.Postgres = &postgres.DBConn{}
			},
		},
		{
			name:    "postgres without connection",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "postgres" },
			wantErr: "postgres section is missing",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.Storage.Driver = "mongo" },
			wantErr: `got "mongo"`,
		},
		{
			name:    "shared secret",
			mutate:  func(cfg *Config) { cfg.SecretKey.Refresh = cfg.SecretKey.Access },
			wantErr: "must differ",
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(cfg *Config) { cfg.Auth = &AuthConfig{BcryptCost: 40} },
			wantErr: "auth.bcryptCost",
		},
		{
			name:    "negative delivery window",
			mutate:  func(cfg *Config) { cfg.Orders = &OrdersConfig{DefaultDeliveryWindow: -time.Minute} },
			wantErr: "orders.defaultDeliveryWindow",
		},
		{
			name:    "google provider without topic",
			mutate:  func(cfg *Config) { cfg.PubSub = &PubSubConfig{Provider: "google", ProjectID: "p"} },
			wantErr: "pubsub.topicId",
		},
		{
			name:   "gocloud provider with topic url",
			mutate: func(cfg *Config) { cfg.PubSub = &PubSubConfig{Provider: "gocloud", TopicURL: "mem://orders"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateReportsEveryProblem(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = "postgres"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres section is missing")
	assert.Contains(t, err.Error(), "secretKey.access and secretKey.refresh are required")
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name:   "localhost default port",
			server: ServerConfig{Host: "localhost", Port: 8030},
			want:   "localhost:8030",
		},
		{
			name:   "bind all interfaces",
			server: ServerConfig{Host: "0.0.0.0", Port: 8080},
			want:   "0.0.0.0:8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.server.Address())
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "shop",
		Password: "secret",
		DBName:   "ecommerce",
		SSLMode:  "disable",
	}
	assert.Equal(t, "postgres://shop:secret@db:5433/ecommerce?sslmode=disable", p.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, 5001, cfg.Generator.OrderItemBaseID)
	assert.Equal(t, 6001, cfg.Generator.ReviewBaseID)
	assert.Equal(t, 200, cfg.Generator.ReviewCap)
	assert.Equal(t, StoreSQLite, cfg.Store.Target)
	assert.Equal(t, time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC), cfg.Report.AsOf)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GEN_SEED", "42")
	t.Setenv("GEN_REVIEW_CAP", "50")
	t.Setenv("STORE_TARGET", "Postgres")
	t.Setenv("KAFKA_BOOTSTRAP_SERVERS", " k1:9092, ,k2:9092 ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.Equal(t, 50, cfg.Generator.ReviewCap)
	assert.Equal(t, StorePostgres, cfg.Store.Target)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown store", key: "STORE_TARGET", val: "mysql"},
		{name: "bad report date", key: "REPORT_AS_OF", val: "14/11/2025"},
		{name: "negative cap", key: "GEN_REVIEW_CAP", val: "-1"},
		{name: "empty data dir", key: "DATA_DIR", val: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

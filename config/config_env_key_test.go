package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"orders": map[string]any{
			"strictStatusTransitions": false,
		},
		"export": map[string]any{
			"bucketUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "ORDERS_STRICTSTATUSTRANSITIONS", want: "orders.strictStatusTransitions"},
		{envKey: "EXPORT_BUCKETURL", want: "export.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultListAllCap, cfg.Orders.ListAllCap)
	assert.False(t, cfg.Orders.StrictStatusTransitions)

	cfg = &Config{Orders: &OrdersConfig{ListAllCap: 50}, Auth: &AuthConfig{AccessTokenTTL: time.Hour}}
	applyDefaults(cfg)

	assert.Equal(t, 50, cfg.Orders.ListAllCap)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
}

func TestReplicasFromEnv(t *testing.T) {
	vars := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		"POSTGRES_REPLICAS_3_HOST":     "skipped",
		"POSTGRES_REPLICAS_3_PORT":     "5434",
	}

	replicas := replicasFromEnv(func(key string) string { return vars[key] })

	assert.Len(t, replicas, 2)
	assert.Equal(t, "replica-a", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
	assert.Equal(t, "5433", replicas[1].Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Postgres: &postgres.DBConn{}}
		cfg.HTTP.Port = 8080
		cfg.SecretKey.Access = "secret"

		return cfg
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Postgres = nil
	assert.ErrorContains(t, cfg.Validate(), "postgres")

	cfg = valid()
	cfg.SecretKey.Access = "  "
	assert.ErrorContains(t, cfg.Validate(), "secretKey.access")

	cfg = valid()
	cfg.HTTP.Port = 70000
	assert.ErrorContains(t, cfg.Validate(), "http.port")

	cfg = valid()
	cfg.Bootstrap = &BootstrapConfig{Email: "admin@courier.local", Password: "short"}
	assert.ErrorContains(t, cfg.Validate(), "bootstrap.password")
}

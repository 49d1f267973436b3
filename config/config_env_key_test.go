package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
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
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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

func TestConfig_OrderDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.OrderDeliveryWindow(); got != defaultDeliveryWindow {
		t.Fatalf("OrderDeliveryWindow() = %v, want %v", got, defaultDeliveryWindow)
	}
	if !cfg.RestockOnCancel() {
		t.Fatal("RestockOnCancel() = false, want true when unset")
	}

	keep := false
	cfg.Orders = &OrdersConfig{DefaultDeliveryWindow: 2 * defaultDeliveryWindow, RestockOnCancel: &keep}
	if got := cfg.OrderDeliveryWindow(); got != 2*defaultDeliveryWindow {
		t.Fatalf("OrderDeliveryWindow() = %v, want %v", got, 2*defaultDeliveryWindow)
	}
	if cfg.RestockOnCancel() {
		t.Fatal("RestockOnCancel() = true, want false when disabled")
	}
}

func TestReplicasFromEnv(t *testing.T) {
	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-a",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-b",
		"POSTGRES_REPLICAS_1_PORT":     "5433",
		// Index 2 has no port, so index 3 is never read.
		"POSTGRES_REPLICAS_2_HOST": "replica-c",
		"POSTGRES_REPLICAS_3_HOST": "replica-d",
		"POSTGRES_REPLICAS_3_PORT": "5435",
	}
	lookup := func(key string) (string, bool) {
		value, ok := env[key]

		return value, ok
	}

	replicas := replicasFromEnv(lookup)
	if len(replicas) != 2 {
		t.Fatalf("replicasFromEnv() returned %d replicas, want 2", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].UserName != "reader" {
		t.Fatalf("first replica = %+v", replicas[0])
	}
	if replicas[1].Port != "5433" || replicas[1].Password != "" {
		t.Fatalf("second replica = %+v", replicas[1])
	}
}

func TestConfig_WorkerPort(t *testing.T) {
	cfg := &Config{}
	if got := cfg.WorkerPort(); got != defaultWorkerPort {
		t.Fatalf("WorkerPort() = %d, want %d", got, defaultWorkerPort)
	}

	cfg.Worker.Port = 9090
	if got := cfg.WorkerPort(); got != 9090 {
		t.Fatalf("WorkerPort() = %d, want 9090", got)
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: 9000\nsecretKey:\n  access: a\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigFile, path)
	t.Setenv("SECRETKEY_ACCESS", "from-env")

	cfg, err := Load[Config]("config")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Port != 9000 {
		t.Fatalf("HTTP.Port = %d, want 9000", cfg.HTTP.Port)
	}
	if cfg.SecretKey.Access != "from-env" {
		t.Fatalf("SecretKey.Access = %q, want env override", cfg.SecretKey.Access)
	}
}

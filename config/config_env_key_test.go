package config

import (
	"testing"
	"time"
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
			"kafka": map[string]any{
				"groupId": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"session": map[string]any{
			"pebblePath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_KAFKA_GROUPID", want: "pubsub.kafka.groupId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "SESSION_PEBBLEPATH", want: "session.pebblePath"},
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

func TestApplyDefaults_FillsSessionAndPayment(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.Session.Backend != "memory" {
		t.Fatalf("session backend = %q, want memory", cfg.Session.Backend)
	}
	if cfg.Session.TTL != defaultSessionTTL {
		t.Fatalf("session ttl = %s, want %s", cfg.Session.TTL, defaultSessionTTL)
	}
	if cfg.Payment.ExchangeRate != "10.9" || cfg.Payment.Currency != "usd" {
		t.Fatalf("payment defaults = %+v", cfg.Payment)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{Backend: "pebble", TTL: time.Hour, PurgeInterval: time.Minute},
		Payment: &PaymentConfig{Provider: "stripe", ExchangeRate: "11", Currency: "eur"},
	}

	applyDefaults(cfg)

	if cfg.Session.Backend != "pebble" || cfg.Session.TTL != time.Hour || cfg.Session.PurgeInterval != time.Minute {
		t.Fatalf("session overridden: %+v", cfg.Session)
	}
	if cfg.Payment.Provider != "stripe" || cfg.Payment.ExchangeRate != "11" || cfg.Payment.Currency != "eur" {
		t.Fatalf("payment overridden: %+v", cfg.Payment)
	}
}

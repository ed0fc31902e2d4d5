package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":  "disable",
			"userName": "user",
		},
		"jwt": map[string]any{
			"expiryMinutes": 30,
		},
		"storage": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_USERNAME", want: "postgres.userName"},
		{envKey: "JWT_EXPIRYMINUTES", want: "jwt.expiryMinutes"},
		{envKey: "STORAGE_BASEURL", want: "storage.baseUrl"},
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

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")
	t.Setenv("POSTGRES_REPLICAS_1_PORT", "5434")
	t.Setenv("POSTGRES_REPLICAS_1_USERNAME", "reader")

	replicas := buildReplicasFromEnv()

	if len(replicas) != 2 {
		t.Fatalf("expected 2 replicas, got %d", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].Port != "5433" {
		t.Fatalf("unexpected first replica: %+v", replicas[0])
	}
	if replicas[1].UserName != "reader" {
		t.Fatalf("unexpected second replica: %+v", replicas[1])
	}
}

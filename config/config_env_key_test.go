package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"upstream": map[string]any{
			"baseURL": "http://localhost:8090",
			"recommendPath": "/stores/recommend",
		},
		"feed": map[string]any{
			"sessionTTL": "30m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"stub": map[string]any{
			"signingKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "UPSTREAM_BASEURL", want: "upstream.baseURL"},
		{envKey: "UPSTREAM_RECOMMENDPATH", want: "upstream.recommendPath"},
		{envKey: "FEED_SESSIONTTL", want: "feed.sessionTTL"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STUB_SIGNINGKEY", want: "stub.signingKey"},
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

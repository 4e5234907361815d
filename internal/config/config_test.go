package config

import (
	"testing"
)

func TestRedisConfig_Addr(t *testing.T) {
	tests := []struct {
		name     string
		config   RedisConfig
		expected string
	}{
		{
			name:     "defaults",
			config:   RedisConfig{Host: "localhost", Port: 6379},
			expected: "localhost:6379",
		},
		{
			name:     "remote host",
			config:   RedisConfig{Host: "cache.internal", Port: 6380},
			expected: "cache.internal:6380",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.Addr()
			if got != tt.expected {
				t.Errorf("Addr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEmailConfig_IsConfigured(t *testing.T) {
	tests := []struct {
		name   string
		config EmailConfig
		want   bool
	}{
		{
			name: "configured with domain and API key",
			config: EmailConfig{
				MailgunDomain: "mg.example.com",
				MailgunAPIKey: "key-12345",
			},
			want: true,
		},
		{
			name: "not configured without domain",
			config: EmailConfig{
				MailgunDomain: "",
				MailgunAPIKey: "key-12345",
			},
			want: false,
		},
		{
			name: "not configured without API key",
			config: EmailConfig{
				MailgunDomain: "mg.example.com",
				MailgunAPIKey: "",
			},
			want: false,
		},
		{
			name:   "not configured with empty config",
			config: EmailConfig{},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.config.IsConfigured()
			if got != tt.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tt.want)
			}
		})
	}
}

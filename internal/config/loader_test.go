package config

import (
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_EXPAND_HOST", "db.internal")

	tests := []struct {
		in   string
		want string
	}{
		{"host: ${TEST_EXPAND_HOST:localhost}", "host: db.internal"},
		{"host: ${TEST_EXPAND_MISSING:localhost}", "host: localhost"},
		{"password: ${TEST_EXPAND_MISSING:}", "password: "},
		{"plain: value", "plain: value"},
		// unresolved placeholders without defaults stay visible
		{"key: ${TEST_EXPAND_NO_DEFAULT}", "key: ${TEST_EXPAND_NO_DEFAULT}"},
	}

	for _, tt := range tests {
		if got := expandEnv(tt.in); got != tt.want {
			t.Errorf("expandEnv(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteEnvVars(t *testing.T) {
	t.Setenv("CF_SET", "value")
	t.Setenv("CF_EMPTY", "")

	tests := []struct {
		name    string
		input   string
		want    string
		missing []string
	}{
		{"plain", `key = "${CF_SET}"`, `key = "value"`, nil},
		{"unset", `key = "${CF_UNSET}"`, `key = "${CF_UNSET}"`, []string{"CF_UNSET"}},
		{"empty is set", `key = "${CF_EMPTY}"`, `key = ""`, nil},
		{"default used", `key = "${CF_UNSET:-fallback}"`, `key = "fallback"`, nil},
		{"default on empty", `key = "${CF_EMPTY:-fallback}"`, `key = "fallback"`, nil},
		{"default ignored", `key = "${CF_SET:-fallback}"`, `key = "value"`, nil},
		{"required set", `key = "${CF_SET:?need it}"`, `key = "value"`, nil},
		{"required unset", `key = "${CF_UNSET:?need it}"`, `key = "${CF_UNSET:?need it}"`, []string{"CF_UNSET: need it"}},
		{"no refs", `port = 8585`, `port = 8585`, nil},
		{"multiple", `a = "${CF_SET}" b = "${CF_UNSET}"`, `a = "value" b = "${CF_UNSET}"`, []string{"CF_UNSET"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, missing := substituteEnvVars(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.missing, missing)
		})
	}
}

package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string passes through", "3.0.0", "3.0.0"},
		{"integral float keeps one decimal", 3.0, "3.0"},
		{"large integral float", 300.0, "300.0"},
		{"fractional float", 3.01, "3.01"},
		{"int", 3, "3"},
		{"int64", int64(3), "3"},
		{"bool", true, "true"},
		{"nil", nil, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringify(tt.in))
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []any{nil, "", false, 0.0, 0, int64(0), []any{}, map[string]any{}} {
		assert.False(t, truthy(v), "%#v should count as absent", v)
	}
	for _, v := range []any{"x", true, 1.0, []any{"a"}, map[string]any{"a": 1}} {
		assert.True(t, truthy(v), "%#v should count as present", v)
	}
}

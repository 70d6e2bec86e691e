package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{FormatText, FormatJSON, FormatYAML} {
		assert.NoError(t, ValidateOutputFormat(format))
	}

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestMarshalStructured(t *testing.T) {
	data := map[string]any{"key": "value"}

	t.Run("json", func(t *testing.T) {
		out, err := MarshalStructured(data, FormatJSON)
		require.NoError(t, err)
		assert.JSONEq(t, `{"key": "value"}`, string(out))
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := MarshalStructured(data, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, "key: value\n", string(out))
	})

	t.Run("text rejected", func(t *testing.T) {
		_, err := MarshalStructured(data, FormatText)
		assert.Error(t, err)
	})
}

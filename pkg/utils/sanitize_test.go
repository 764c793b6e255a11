package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeList(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{"nil", nil, []string{}},
		{"comma string", " hiking, food ,, museums ", []string{"hiking", "food", "museums"}},
		{"string slice", []string{"a", " ", "b ", "a"}, []string{"a", "b"}},
		{"any slice", []any{"x", nil, 3, " y "}, []string{"x", "3", "y"}},
		{"unsupported", 42, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeList(tt.input))
		})
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	var body struct {
		Tags StringList `json:"tags"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"tags":"beach, surf, beach"}`), &body))
	assert.Equal(t, StringList{"beach", "surf"}, body.Tags)

	require.NoError(t, json.Unmarshal([]byte(`{"tags":["  city ", ""]}`), &body))
	assert.Equal(t, StringList{"city"}, body.Tags)
}

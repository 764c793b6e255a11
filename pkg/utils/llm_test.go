package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`},
		{"prose around", "Here you go: {\"t\":\"x\"} hope it helps", `{"t":"x"}`},
		{"brace in string", `{"t":"a } b"} trailing }`, `{"t":"a } b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	_, err := ExtractJSONObject("sorry, I cannot help")
	assert.ErrorIs(t, err, ErrNoJSONObject)

	_, err = ExtractJSONObject(`{"unterminated": true`)
	assert.ErrorIs(t, err, ErrNoJSONObject)
}

func TestNewTextGenerator_UnknownProvider(t *testing.T) {
	_, err := NewTextGenerator("mistral", "key", "", "")
	assert.Error(t, err)
}

func TestNewTextGenerator_Providers(t *testing.T) {
	gen, err := NewTextGenerator("OpenAI", "key", "http://localhost:8080/v1/", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", gen.Provider())

	// A failed gemini client must come back as a nil interface, not a typed nil.
	gen, err = NewTextGenerator("gemini", "key", "", "")
	if err != nil {
		assert.Nil(t, gen)
		return
	}
	require.NotNil(t, gen)
	assert.Equal(t, "gemini", gen.Provider())
	assert.NoError(t, gen.Close())
}

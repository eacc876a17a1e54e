package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name     string
		in       any
		expected string
	}{
		{
			name:     "Estrutura é serializada e indentada",
			in:       map[string]int{"contacted_count": 2},
			expected: "{\n\t\"contacted_count\": 2\n}",
		},
		{
			name:     "JSON já serializado é apenas indentado",
			in:       []byte(`{"id":"CMP001"}`),
			expected: "{\n\t\"id\": \"CMP001\"\n}",
		},
		{
			name:     "Bytes inválidos são devolvidos sem alteração",
			in:       []byte(`not json`),
			expected: "not json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrettyJson(tt.in))
		})
	}
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 12.35, RoundWithTwoDecimalPlace(12.345678))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(33.333))
	assert.Equal(t, -100.0, RoundWithOneDecimalPlace(-100.04))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	assert.NoError(t, err)
	assert.Len(t, first, idLength)

	second, err := GenerateID()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

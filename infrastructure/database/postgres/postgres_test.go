package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "Violação de unique", err: &pq.Error{Code: "23505"}, expected: true},
		{name: "Violação de unique encapsulada", err: fmt.Errorf("database error: %w", &pq.Error{Code: "23505"}), expected: true},
		{name: "Outro erro do postgres", err: &pq.Error{Code: "23503"}, expected: false},
		{name: "Erro genérico", err: errors.New("falhou"), expected: false},
		{name: "Sem erro", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err))
		})
	}
}

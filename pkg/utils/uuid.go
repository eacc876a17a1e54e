package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// GenerateID gera os identificadores curtos usados em todas as tabelas
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

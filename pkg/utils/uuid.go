package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID gera o identificador estável dos registros. Doze caracteres
// deixam a chance de colisão desprezível para o volume de um operador.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

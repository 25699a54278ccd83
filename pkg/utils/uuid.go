package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const runIDSize = 12

// GenerateRunID gera o identificador curto de uma execução da extração
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, runIDSize)
}

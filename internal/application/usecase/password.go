package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GeneratedPasswordLen lunghezza della password generata quando il chiamante non ne fornisce una.
const GeneratedPasswordLen = 8

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// generatePassword produce una password alfanumerica casuale da crypto/rand.
// Viene restituita al chiamante una sola volta e mai registrata nei log.
func generatePassword() (string, error) {
	out := make([]byte, GeneratedPasswordLen)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generazione password: %w", err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

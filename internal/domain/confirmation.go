package domain

import (
	"crypto/rand"
	"math/big"
)

// GenerateConfirmationCode returns a new 8-character confirmation code drawn
// uniformly at random from the unambiguous alphabet. Uniqueness is not
// checked here; the storage layer enforces it with a unique index and the
// orchestrator retries on collision.
func GenerateConfirmationCode() (string, error) {
	alphabetLen := big.NewInt(int64(len(ConfirmationCodeAlphabet)))

	code := make([]byte, ConfirmationCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = ConfirmationCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
